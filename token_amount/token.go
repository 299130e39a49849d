package token_amount

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	solanago "github.com/krazyTry/spl-token-go/solana"
)

// Token describes a mint for display and arithmetic. Amounts hold a pointer to it and never modify it.
type Token struct {
	Mint     solana.PublicKey
	Decimals uint8
	Symbol   string
	Name     string
}

// NewToken describes mint with the given decimals and display names.
func NewToken(mint solana.PublicKey, decimals uint8, symbol, name string) *Token {
	return &Token{
		Mint:     mint,
		Decimals: decimals,
		Symbol:   symbol,
		Name:     name,
	}
}

// NewTokenFromMint takes the decimals from a decoded mint.
func NewTokenFromMint(address solana.PublicKey, mint *solanago.Mint, symbol, name string) *Token {
	return NewToken(address, mint.Decimals, symbol, name)
}

// Equals reports whether t and other describe the same mint.
func (t *Token) Equals(other *Token) bool {
	if t == nil || other == nil {
		return false
	}
	if t == other {
		return true
	}
	return t.Mint.Equals(other.Mint) && t.Decimals == other.Decimals
}

func (t *Token) String() string {
	return fmt.Sprintf("Token[mint=%s, decimals=%d, symbol=%s]", t.Mint, t.Decimals, t.Symbol)
}
