package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

var ErrAccountNotFound = errors.New("account not found")

// Client fetches token program accounts and hands the raw bytes to the decoders.
type Client struct {
	rpcClient  *rpc.Client
	commitment rpc.CommitmentType
	programID  solana.PublicKey
}

type Option func(*Client)

// WithCommitment sets the commitment used for every query. Defaults to finalized.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *Client) {
		c.commitment = commitment
	}
}

// WithProgramID overrides the token program queried by GetTokenAccountsByOwner. Programs other than
// the legacy token program, such as Token-2022, may hold accounts longer than TokenAccountSize, so
// no dataSize filter is sent for them.
func WithProgramID(programID solana.PublicKey) Option {
	return func(c *Client) {
		c.programID = programID
	}
}

func NewClient(rpcClient *rpc.Client, opts ...Option) *Client {
	c := &Client{
		rpcClient:  rpcClient,
		commitment: rpc.CommitmentFinalized,
		programID:  solana.TokenProgramID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	out, err := c.rpcClient.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Commitment: c.commitment,
		Encoding:   solana.EncodingBase64,
	})
	if errors.Is(err, rpc.ErrNotFound) || (err == nil && (out == nil || out.Value == nil)) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", address, err)
	}
	return out.GetBinary(), nil
}

func (c *Client) GetAccount(ctx context.Context, address solana.PublicKey) (*Account, error) {
	data, err := c.getAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	return DecodeAccount(address, data)
}

func (c *Client) GetMint(ctx context.Context, mint solana.PublicKey) (*Mint, error) {
	data, err := c.getAccountData(ctx, mint)
	if err != nil {
		return nil, err
	}
	return DecodeMint(data)
}

// GetMultipleMints returns one entry per requested mint, nil where the account does not exist.
func (c *Client) GetMultipleMints(ctx context.Context, mints ...solana.PublicKey) ([]*Mint, error) {
	outs, err := c.rpcClient.GetMultipleAccountsWithOpts(ctx, mints, &rpc.GetMultipleAccountsOpts{
		Commitment: c.commitment,
		Encoding:   solana.EncodingBase64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get mints: %w", err)
	}
	list := make([]*Mint, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil {
			continue
		}
		mint, err := DecodeMint(out.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("mint %s: %w", mints[i], err)
		}
		list[i] = mint
	}
	return list, nil
}

// Filter narrows GetTokenAccountsByOwner to a single mint when Mint is set.
type Filter struct {
	Owner solana.PublicKey
	Mint  COption[solana.PublicKey]
}

// ProgramAccountFilters builds the memcmp filters selecting token accounts of programID matching f.
// A dataSize filter is only added for the legacy token program, whose accounts are always
// TokenAccountSize bytes.
func (f Filter) ProgramAccountFilters(programID solana.PublicKey) []rpc.RPCFilter {
	var filters []rpc.RPCFilter
	if programID.Equals(solana.TokenProgramID) {
		filters = append(filters, rpc.RPCFilter{DataSize: uint64(TokenAccountSize)})
	}
	filters = append(filters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: uint64(TokenAccountLayout.Offset(FieldOwner)),
			Bytes:  f.Owner[:],
		},
	})
	if mint, ok := f.Mint.Get(); ok {
		filters = append(filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: uint64(TokenAccountLayout.Offset(FieldMint)),
				Bytes:  mint[:],
			},
		})
	}
	return filters
}

func (c *Client) GetTokenAccountsByOwner(ctx context.Context, f Filter) ([]*Account, error) {
	outs, err := c.rpcClient.GetProgramAccountsWithOpts(ctx, c.programID, &rpc.GetProgramAccountsOpts{
		Commitment: c.commitment,
		Encoding:   solana.EncodingBase64,
		Filters:    f.ProgramAccountFilters(c.programID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get token accounts of %s: %w", f.Owner, err)
	}
	list := make([]*Account, 0, len(outs))
	for _, out := range outs {
		if out == nil || out.Account == nil {
			continue
		}
		data, ok := baseAccountData(out.Account.Data.GetBinary())
		if !ok {
			continue
		}
		acc, err := DecodeAccount(out.Pubkey, data)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", out.Pubkey, err)
		}
		list = append(list, acc)
	}
	return list, nil
}

// accountTypeAccount tags extended Token-2022 token accounts at offset TokenAccountSize.
const accountTypeAccount = 2

// baseAccountData returns the token account prefix of data. Extended accounts keep the base layout
// followed by an account type byte; anything else longer than the base layout is not a token account.
func baseAccountData(data []byte) ([]byte, bool) {
	if len(data) <= TokenAccountSize {
		return data, true
	}
	if data[TokenAccountSize] != accountTypeAccount {
		return nil, false
	}
	return data[:TokenAccountSize], true
}
