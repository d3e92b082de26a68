// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing.

Precedence, highest first: CLI flags, environment variables (with .env loaded
first if present), then an optional YAML file passed via -c. Required values
are validated after all sources are merged; missing ones fail startup with a
message naming both the flag and the environment variable.
*/
package cliparse
