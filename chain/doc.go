// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package chain talks to the proposal registry contract.

Client wraps an ethclient connection and the bound registry contract. Reads
(proposalCount, proposals) need no key. Writes (createProposal, vote) are
relayed with the configured operator key; without one the client is read-only
and write calls return ErrReadOnly.

	source, err := chain.Dial(ctx, rpcURL, contractAddr, operatorKey, chainID)
	count, err := source.ProposalCount(ctx)

Confirmation is observed by polling for the transaction receipt:

	err := source.WaitConfirmed(ctx, txHash)

A reverted transaction is an error; a transaction with no receipt stays
pending for as long as the caller keeps waiting.
*/
package chain
