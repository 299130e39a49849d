package spltoken

import (
	"github.com/krazyTry/spl-token-go/solana"
	"github.com/krazyTry/spl-token-go/token_amount"
)

// DecodeAccount decodes a 165 byte SPL token account fetched for address.
//
// Example:
//
// out, _ := rpcClient.GetAccountInfo(ctx, address)
//
// account, _ := DecodeAccount(address, out.GetBinary())
var DecodeAccount = solana.DecodeAccount

// DecodeMint decodes an 82 byte SPL token mint.
var DecodeMint = solana.DecodeMint

// NewClient wraps an rpc client that fetches and decodes token accounts.
//
// Example:
//
// client := NewClient(rpc.New(rpc.MainNetBeta_RPC), solana.WithCommitment(rpc.CommitmentConfirmed))
//
// mint, _ := client.GetMint(ctx, usdcMint)
var NewClient = solana.NewClient

// NewToken describes a mint for TokenAmount arithmetic.
var NewToken = token_amount.NewToken

// NewTokenAmount builds an amount from raw units.
//
// Example:
//
// usdc := NewToken(usdcMint, 6, "USDC", "USD Coin")
//
// amount, _ := ParseTokenAmount(usdc, "1.5") // 1500000 raw units
//
// amount.FormatUnits() // "1.5 USDC"
var NewTokenAmount = token_amount.New

var ParseTokenAmount = token_amount.Parse
