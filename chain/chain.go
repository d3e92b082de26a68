// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chain

import (
	"context"

	"github.com/rialohq/rialo-dao/models"
)

// Source is the proposal registry as this service consumes it. Reads return
// point-in-time contract state; writes return the hash of the submitted
// transaction and confirmation is observed separately via WaitConfirmed.
type Source interface {
	ProposalCount(ctx context.Context) (uint64, error)
	ProposalByID(ctx context.Context, id uint64) (models.Proposal, error)
	CreateProposal(ctx context.Context, title string) (txHash string, err error)
	Vote(ctx context.Context, id uint64, support bool) (txHash string, err error)
	WaitConfirmed(ctx context.Context, txHash string) error
}
