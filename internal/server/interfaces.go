// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transports managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or the listener fails.
	RunServer()

	// Shutdown stops accepting requests and waits, up to the configured
	// shutdown timeout, for in-flight ones to finish.
	Shutdown()
}
