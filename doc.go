// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Rialo DAO gateway server.

The gateway sits between the DAO web frontend and two external systems: the
on-chain proposal registry contract and the hosted moderation database. It
polls the registry into an in-memory snapshot, filters it against the
moderation blacklist, and serves ranked, listed, and single-proposal views.
Votes and proposal creation are relayed to the contract and tracked to
confirmation.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=... RPC_URL=https://... CONTRACT_ADDRESS=0x... MODERATION_SALT=... go run main.go

Or with flags:

	go run main.go -p 3320 -d "postgres://..." -rpc "https://..." -contract 0x...

# Configuration

Required settings:

  - DATABASE_URL (-d): Moderation database connection string
  - RPC_URL (-rpc): Chain JSON-RPC endpoint
  - CONTRACT_ADDRESS (-contract): Proposal registry contract address
  - MODERATION_SALT (--moderation-salt): Secret for moderation key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3320)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CHAIN_ID (-chain-id): Chain ID for signing (default: Base Sepolia)
  - OPERATOR_KEY (--operator-key): Relay key; without it the service is read-only
  - POLL_INTERVAL (-poll): Snapshot refresh cadence (default: 15s)
  - -c: YAML config file, lowest precedence

# Architecture

The server uses a handler-based architecture with dependency injection:

  - chain: Proposal registry client (reads, relayed writes, confirmation)
  - poller: Snapshot pipeline (poll, concurrent fetch, discard-and-replace)
  - handlers: HTTP request handlers plus the pure ranking/catalog/cursor logic
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Moderation key validation
  - db: Moderation blacklist and preference storage
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
