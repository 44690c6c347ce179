// Package ratelimit provides per-key sliding-window admission control.
//
// # Window semantics
//
// Every key (usually the client address) owns an ordered list of admission
// timestamps. On each check timestamps at or before now-Window are purged,
// the request is rejected when MaxRequests timestamps remain, otherwise now
// is appended and the request is admitted. Rejections are not recorded.
//
// Each protected route owns its own [Limiter] with its own [Policy]; the
// [Registry] hands them out by route name.
//
// State lives in process memory only and is lost on restart.
package ratelimit
