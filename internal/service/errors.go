package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoSamplerProvided     = errors.New("no host sampler provided")
)
