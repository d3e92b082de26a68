// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chain

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/rialohq/rialo-dao/models"
)

// registryABI is the proposal registry contract interface. Proposal ids are
// assigned sequentially from 1; proposals(id) for an unassigned id returns
// exists=false rather than reverting.
const registryABI = `[
	{"inputs":[{"internalType":"string","name":"_title","type":"string"}],"name":"createProposal","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_id","type":"uint256"},{"internalType":"bool","name":"_vote","type":"bool"}],"name":"vote","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"","type":"uint256"}],"name":"proposals","outputs":[{"internalType":"string","name":"title","type":"string"},{"internalType":"uint256","name":"yesVotes","type":"uint256"},{"internalType":"uint256","name":"noVotes","type":"uint256"},{"internalType":"bool","name":"exists","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"proposalCount","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const receiptPollInterval = 2 * time.Second

var ErrReadOnly = errors.New("no operator key configured, write operations disabled")

// Client is the ethclient-backed Source. Reads need no key; writes are
// relayed with the configured operator key and are disabled without one.
type Client struct {
	eth      *ethclient.Client
	contract *bind.BoundContract

	// txMu serializes relayed writes so pending-nonce assignment stays
	// monotonic across concurrent submissions.
	txMu   sync.Mutex
	txOpts *bind.TransactOpts
}

// Dial connects to the JSON-RPC endpoint and binds the registry contract.
// operatorKeyHex may be empty for a read-only client.
func Dial(ctx context.Context, rpcURL, contractAddr, operatorKeyHex string, chainID int64) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial rpc endpoint %s", rpcURL)
	}

	if !common.IsHexAddress(contractAddr) {
		return nil, errors.Errorf("invalid contract address %q", contractAddr)
	}

	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse registry ABI")
	}

	c := &Client{
		eth:      eth,
		contract: bind.NewBoundContract(common.HexToAddress(contractAddr), parsed, eth, eth, eth),
	}

	if operatorKeyHex != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(operatorKeyHex, "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse operator key")
		}
		opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
		if err != nil {
			return nil, errors.Wrap(err, "failed to build transactor")
		}
		c.txOpts = opts
	}

	return c, nil
}

// ReadOnly reports whether the client can submit transactions.
func (c *Client) ReadOnly() bool { return c.txOpts == nil }

func (c *Client) ProposalCount(ctx context.Context) (uint64, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.contract.Call(opts, &out, "proposalCount"); err != nil {
		return 0, errors.Wrap(err, "proposalCount call failed")
	}
	count, ok := out[0].(*big.Int)
	if !ok {
		return 0, errors.Errorf("unexpected proposalCount result %T", out[0])
	}
	return count.Uint64(), nil
}

func (c *Client) ProposalByID(ctx context.Context, id uint64) (models.Proposal, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.contract.Call(opts, &out, "proposals", new(big.Int).SetUint64(id)); err != nil {
		return models.Proposal{}, errors.Wrapf(err, "proposals(%d) call failed", id)
	}
	p, err := decodeProposal(out)
	if err != nil {
		return models.Proposal{}, errors.Wrapf(err, "proposals(%d) result malformed", id)
	}
	p.ID = id
	return p, nil
}

// decodeProposal converts the unpacked proposals(id) return values.
func decodeProposal(out []interface{}) (models.Proposal, error) {
	if len(out) != 4 {
		return models.Proposal{}, errors.Errorf("expected 4 values, got %d", len(out))
	}
	title, ok := out[0].(string)
	if !ok {
		return models.Proposal{}, errors.Errorf("title is %T, not string", out[0])
	}
	yes, ok := out[1].(*big.Int)
	if !ok {
		return models.Proposal{}, errors.Errorf("yesVotes is %T, not *big.Int", out[1])
	}
	no, ok := out[2].(*big.Int)
	if !ok {
		return models.Proposal{}, errors.Errorf("noVotes is %T, not *big.Int", out[2])
	}
	exists, ok := out[3].(bool)
	if !ok {
		return models.Proposal{}, errors.Errorf("exists is %T, not bool", out[3])
	}
	return models.Proposal{
		Title:    title,
		YesVotes: yes.Uint64(),
		NoVotes:  no.Uint64(),
		Exists:   exists,
	}, nil
}

func (c *Client) CreateProposal(ctx context.Context, title string) (string, error) {
	tx, err := c.transact(ctx, "createProposal", title)
	if err != nil {
		return "", errors.Wrap(err, "createProposal failed")
	}
	return tx.Hash().Hex(), nil
}

func (c *Client) Vote(ctx context.Context, id uint64, support bool) (string, error) {
	tx, err := c.transact(ctx, "vote", new(big.Int).SetUint64(id), support)
	if err != nil {
		return "", errors.Wrapf(err, "vote on proposal %d failed", id)
	}
	return tx.Hash().Hex(), nil
}

func (c *Client) transact(ctx context.Context, method string, args ...interface{}) (*types.Transaction, error) {
	if c.txOpts == nil {
		return nil, ErrReadOnly
	}
	c.txMu.Lock()
	defer c.txMu.Unlock()

	opts := *c.txOpts
	opts.Context = ctx
	return c.contract.Transact(&opts, method, args...)
}

// WaitConfirmed blocks until the transaction has a receipt. A reverted
// transaction is an error. There is no timeout beyond ctx; a submission with
// no receipt stays pending for as long as the caller keeps waiting.
func (c *Client) WaitConfirmed(ctx context.Context, txHash string) error {
	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return errors.Errorf("transaction %s reverted", txHash)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "gave up waiting for transaction %s", txHash)
		case <-ticker.C:
		}
	}
}
