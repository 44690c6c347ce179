// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means both SERVER_ADDRESS and SERVER_GRPC_ADDRESS
// are empty, leaving the backend with neither the HTTP API nor the gRPC
// health service. main treats it as fatal.
var errNoHandlersAreCreated = errors.New("no handlers are created: neither http nor grpc address is set")
