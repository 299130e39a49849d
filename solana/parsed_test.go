package solana

import (
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/krazyTry/spl-token-go/u64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedAccountJSON(info string) []byte {
	return []byte(fmt.Sprintf(`{"parsed":{"info":%s,"type":"account"},"program":"spl-token","space":165}`, info))
}

func TestDecodeParsedAccount(t *testing.T) {
	acc := testAccount()
	info := fmt.Sprintf(`{
		"closeAuthority": %q,
		"delegate": %q,
		"delegatedAmount": {"amount": "500", "decimals": 6, "uiAmount": 0.0005, "uiAmountString": "0.0005"},
		"isNative": false,
		"mint": %q,
		"owner": %q,
		"state": "initialized",
		"tokenAmount": {"amount": "1000000", "decimals": 6, "uiAmount": 1.0, "uiAmountString": "1"}
	}`, acc.CloseAuthority.UnwrapOr(solana.PublicKey{}), acc.Delegate.UnwrapOr(solana.PublicKey{}), acc.Mint, acc.Owner)

	parsed, err := DecodeParsedAccount(acc.Address, parsedAccountJSON(info))
	require.NoError(t, err)

	binaryDecoded, err := DecodeAccount(acc.Address, encodeTestAccount(t, acc))
	require.NoError(t, err)
	assert.Equal(t, binaryDecoded, parsed)
}

func TestDecodeParsedAccountNative(t *testing.T) {
	info := fmt.Sprintf(`{
		"isNative": true,
		"mint": %q,
		"owner": %q,
		"rentExemptReserve": {"amount": "2039280", "decimals": 9, "uiAmount": 0.00203928, "uiAmountString": "0.00203928"},
		"state": "frozen",
		"tokenAmount": {"amount": "18446744073709551615", "decimals": 9}
	}`, solana.WrappedSol, testKey(2))

	acc, err := DecodeParsedAccount(testKey(9), parsedAccountJSON(info))
	require.NoError(t, err)
	assert.True(t, acc.IsNative())
	assert.True(t, acc.IsFrozen())
	assert.Equal(t, uint64(2_039_280), acc.RentExemptReserve.UnwrapOr(0))
	assert.Equal(t, uint64(18446744073709551615), acc.Amount)
	assert.True(t, acc.Delegate.IsNone())
	assert.True(t, acc.CloseAuthority.IsNone())
}

func TestDecodeParsedAccountErrors(t *testing.T) {
	valid := func(state, amount string) []byte {
		return parsedAccountJSON(fmt.Sprintf(`{"mint": %q, "owner": %q, "state": %q, "tokenAmount": {"amount": %q}}`,
			testKey(1), testKey(2), state, amount))
	}

	_, err := DecodeParsedAccount(testKey(9), valid("initialized", "1"))
	require.NoError(t, err)

	_, err = DecodeParsedAccount(testKey(9), []byte(`{"parsed":`))
	require.ErrorIs(t, err, ErrInvalidParsedData)

	_, err = DecodeParsedAccount(testKey(9), []byte(`{"parsed":{"info":{},"type":"mint"}}`))
	require.ErrorIs(t, err, ErrInvalidParsedData)

	_, err = DecodeParsedAccount(testKey(9), valid("closed", "1"))
	require.ErrorIs(t, err, ErrInvalidAccountState)

	_, err = DecodeParsedAccount(testKey(9), valid("initialized", "18446744073709551616"))
	require.ErrorIs(t, err, u64.ErrOutOfRange)

	_, err = DecodeParsedAccount(testKey(9), parsedAccountJSON(fmt.Sprintf(`{"owner": %q, "state": "initialized", "tokenAmount": {"amount": "1"}}`, testKey(2))))
	require.ErrorIs(t, err, ErrInvalidParsedData)
}

func TestDecodeParsedMint(t *testing.T) {
	raw := []byte(fmt.Sprintf(`{"parsed":{"info":{"decimals":6,"freezeAuthority":null,"isInitialized":true,"mintAuthority":%q,"supply":"5000000000000"},"type":"mint"},"program":"spl-token","space":82}`, testKey(1)))

	mint, err := DecodeParsedMint(raw)
	require.NoError(t, err)

	want := testMint()
	want.FreezeAuthority = None[solana.PublicKey]()
	assert.Equal(t, want, mint)

	_, err = DecodeParsedMint([]byte(`{"parsed":{"info":{"decimals":300,"isInitialized":true,"supply":"1"},"type":"mint"}}`))
	require.ErrorIs(t, err, ErrInvalidParsedData)
}
