// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request/completion logging with duration
  - CORS: cross-origin support for the browser frontend
  - JSONResponse / ErrorResponse: response encoding
  - ParseJSONBody: request decoding
*/
package middleware
