package token_amount

import (
	"fmt"
	"math/big"
	"strings"

	solanago "github.com/krazyTry/spl-token-go/solana"

	"github.com/krazyTry/spl-token-go/decimal_math"
	"github.com/krazyTry/spl-token-go/u64"
	"github.com/shopspring/decimal"
)

// TokenAmount is an amount of raw units of a token. The raw value always fits in a u64.
type TokenAmount struct {
	token *Token
	raw   uint64
}

// New builds an amount from raw units, failing with ErrRange outside [0, 2^64-1].
func New(token *Token, raw *big.Int) (TokenAmount, error) {
	if token == nil {
		return TokenAmount{}, ErrNilToken
	}
	v, err := u64.Validate(raw)
	if err != nil {
		return TokenAmount{}, err
	}
	return TokenAmount{token: token, raw: v}, nil
}

// NewFromDecimal builds an amount from an integral number of raw units.
func NewFromDecimal(token *Token, raw decimal.Decimal) (TokenAmount, error) {
	if token == nil {
		return TokenAmount{}, ErrNilToken
	}
	v, err := u64.ValidateDecimal(raw)
	if err != nil {
		return TokenAmount{}, err
	}
	return TokenAmount{token: token, raw: v}, nil
}

func NewFromUint64(token *Token, raw uint64) TokenAmount {
	return TokenAmount{token: token, raw: raw}
}

// Parse reads a human readable amount such as "1,234.5" and scales it by the token decimals.
// Fraction digits beyond the token decimals are dropped.
func Parse(token *Token, uiAmount string) (TokenAmount, error) {
	if token == nil {
		return TokenAmount{}, ErrNilToken
	}
	s := strings.ReplaceAll(strings.TrimSpace(uiAmount), ",", "")
	if s == "" || strings.ContainsAny(s, "eE") {
		return TokenAmount{}, fmt.Errorf("%w: %q", ErrInvalidNumber, uiAmount)
	}

	whole, fraction, _ := strings.Cut(s, ".")
	if strings.IndexFunc(fraction, notDigit) >= 0 {
		return TokenAmount{}, fmt.Errorf("%w: %q", ErrInvalidNumber, uiAmount)
	}
	if len(fraction) > int(token.Decimals) {
		fraction = fraction[:token.Decimals]
	}
	if whole == "" || whole == "-" || whole == "+" {
		whole += "0"
	}
	if fraction != "" {
		whole += "." + fraction
	}

	d, err := decimal.NewFromString(whole)
	if err != nil {
		return TokenAmount{}, fmt.Errorf("%w: %q", ErrInvalidNumber, uiAmount)
	}
	return NewFromDecimal(token, d.Shift(int32(token.Decimals)))
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

// BalanceOf returns the amount held by a decoded token account of token.
func BalanceOf(token *Token, account *solanago.Account) (TokenAmount, error) {
	if token == nil {
		return TokenAmount{}, ErrNilToken
	}
	if !account.Mint.Equals(token.Mint) {
		return TokenAmount{}, fmt.Errorf("%w: account %s holds %s, not %s", ErrTokenMismatch, account.Address, account.Mint, token.Mint)
	}
	return NewFromUint64(token, account.Amount), nil
}

func (a TokenAmount) Token() *Token { return a.token }

// Raw returns the amount in raw units.
func (a TokenAmount) Raw() uint64 { return a.raw }

func (a TokenAmount) BigInt() *big.Int {
	return new(big.Int).SetUint64(a.raw)
}

func (a TokenAmount) IsZero() bool { return a.raw == 0 }

func (a TokenAmount) rawDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(a.BigInt(), 0)
}

// Decimal returns the amount in whole tokens.
func (a TokenAmount) Decimal() decimal.Decimal {
	return a.rawDecimal().Shift(-a.decimals())
}

func (a TokenAmount) decimals() int32 {
	if a.token == nil {
		return 0
	}
	return int32(a.token.Decimals)
}

func (a TokenAmount) checkToken(other TokenAmount) error {
	if !a.token.Equals(other.token) {
		return fmt.Errorf("%w: %v and %v", ErrTokenMismatch, a.token, other.token)
	}
	return nil
}

func (a TokenAmount) Add(other TokenAmount) (TokenAmount, error) {
	if err := a.checkToken(other); err != nil {
		return TokenAmount{}, err
	}
	return NewFromDecimal(a.token, a.rawDecimal().Add(other.rawDecimal()))
}

// Subtract fails with ErrRange when other is larger than a.
func (a TokenAmount) Subtract(other TokenAmount) (TokenAmount, error) {
	if err := a.checkToken(other); err != nil {
		return TokenAmount{}, err
	}
	return NewFromDecimal(a.token, a.rawDecimal().Sub(other.rawDecimal()))
}

// MultiplyBy returns a*percent, rounded down.
func (a TokenAmount) MultiplyBy(percent Percent) (TokenAmount, error) {
	if !percent.valid() {
		return TokenAmount{}, ErrInvalidPercent
	}
	product := a.rawDecimal().Mul(percent.numerator)
	return NewFromDecimal(a.token, decimal_math.FloorDiv(product, percent.denominator))
}

// ReduceBy returns a*(1-percent), rounded down. A percent above 100% fails with ErrRange
// for every amount, zero included.
func (a TokenAmount) ReduceBy(percent Percent) (TokenAmount, error) {
	if !percent.valid() {
		return TokenAmount{}, ErrInvalidPercent
	}
	if percent.numerator.GreaterThan(percent.denominator) {
		return TokenAmount{}, fmt.Errorf("%w: cannot reduce by %s", ErrRange, percent)
	}
	remaining := percent.denominator.Sub(percent.numerator)
	product := a.rawDecimal().Mul(remaining)
	return NewFromDecimal(a.token, decimal_math.FloorDiv(product, percent.denominator))
}

// Cmp compares two amounts of the same token.
func (a TokenAmount) Cmp(other TokenAmount) (int, error) {
	if err := a.checkToken(other); err != nil {
		return 0, err
	}
	switch {
	case a.raw < other.raw:
		return -1, nil
	case a.raw > other.raw:
		return 1, nil
	default:
		return 0, nil
	}
}

// GreaterThan reports whether a is larger than other.
func (a TokenAmount) GreaterThan(other TokenAmount) (bool, error) {
	c, err := a.Cmp(other)
	return c > 0, err
}

// LessThan reports whether a is smaller than other.
func (a TokenAmount) LessThan(other TokenAmount) (bool, error) {
	c, err := a.Cmp(other)
	return c < 0, err
}

// Equal reports whether both amounts are of the same token and hold the same raw value.
func (a TokenAmount) Equal(other TokenAmount) bool {
	return a.token.Equals(other.token) && a.raw == other.raw
}

// ToExact renders the amount with every significant fraction digit, e.g. "100.42".
func (a TokenAmount) ToExact() string {
	return a.Decimal().String()
}

// ToFixed renders the amount rounded to places fraction digits.
func (a TokenAmount) ToFixed(places int32) string {
	return a.Decimal().StringFixed(places)
}

// FormatUnits formats the amount with its symbol, e.g. "100.42 SOL".
func (a TokenAmount) FormatUnits() string {
	if a.token == nil {
		return a.ToExact()
	}
	return fmt.Sprintf("%s %s", a.ToExact(), a.token.Symbol)
}

func (a TokenAmount) String() string {
	return fmt.Sprintf("TokenAmount[Token=(%v), amount=%s]", a.token, a.ToExact())
}
