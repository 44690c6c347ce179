// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated: the handlers carried neither an HTTP router
	// nor a gRPC health handler.
	errNoServersAreCreated = errors.New("no servers are created: http and grpc are both disabled")
	// errNoServersToRun: RunServer was called on a Server with no transports.
	errNoServersToRun = errors.New("no servers to run")
)
