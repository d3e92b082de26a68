// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires handlers to paths using Go 1.22+ method routing:

	mux := router.NewRouter(source, snapshots, store, cfg)

Read routes are anonymous; write routes relay through the chain client;
moderation routes require the X-Moderation-Key header.
*/
package router
