package solana

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMint() *Mint {
	return &Mint{
		MintAuthority:   Some(testKey(1)),
		Supply:          5_000_000_000_000,
		Decimals:        6,
		IsInitialized:   true,
		FreezeAuthority: Some(testKey(2)),
	}
}

func TestDecodeMint(t *testing.T) {
	mint := testMint()
	data, err := EncodeMint(mint)
	require.NoError(t, err)

	decoded, err := DecodeMint(data)
	require.NoError(t, err)
	assert.Equal(t, mint, decoded)

	again, err := DecodeMint(data)
	require.NoError(t, err)
	assert.Equal(t, decoded, again)
}

func TestTokenLayoutDecode(t *testing.T) {
	data, err := EncodeMint(testMint())
	require.NoError(t, err)

	decoded, err := new(TokenLayout).Decode(data)
	require.NoError(t, err)
	assert.Equal(t, testMint(), decoded)

	_, err = new(TokenLayout).Decode(make([]byte, TokenAccountSize))
	require.ErrorIs(t, err, ErrInvalidMintSize)
}

func TestDecodeMintSize(t *testing.T) {
	for n := 0; n <= 200; n++ {
		if n == MintSize {
			continue
		}
		for _, fill := range []byte{0x00, 0xFF} {
			_, err := DecodeMint(bytes.Repeat([]byte{fill}, n))
			require.ErrorIs(t, err, ErrInvalidMintSize, "len %d", n)
			require.ErrorIs(t, err, ErrFormat, "len %d", n)
		}
	}
}

func TestDecodeMintAuthoritiesAbsent(t *testing.T) {
	data, err := EncodeMint(testMint())
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(data[MintLayout.Offset(FieldMintAuthorityOption):], 0)
	binary.LittleEndian.PutUint32(data[MintLayout.Offset(FieldFreezeAuthorityOption):], 0)

	decoded, err := DecodeMint(data)
	require.NoError(t, err)
	assert.True(t, decoded.MintAuthority.IsNone())
	assert.True(t, decoded.FreezeAuthority.IsNone())
	assert.Equal(t, uint64(5_000_000_000_000), decoded.Supply)
}

func TestDecodeMintIsInitialized(t *testing.T) {
	data, err := EncodeMint(testMint())
	require.NoError(t, err)

	for b, want := range map[byte]bool{0: false, 1: true, 2: true, 0xFF: true} {
		data[MintLayout.Offset(FieldIsInitialized)] = b
		decoded, err := DecodeMint(data)
		require.NoError(t, err)
		assert.Equal(t, want, decoded.IsInitialized, "byte %d", b)
	}
}

func TestDecodeMintMatchesTokenProgram(t *testing.T) {
	mint := testMint()
	mint.FreezeAuthority = None[solana.PublicKey]()
	data, err := EncodeMint(mint)
	require.NoError(t, err)

	ours, err := DecodeMint(data)
	require.NoError(t, err)

	theirs := token.Mint{}
	require.NoError(t, theirs.Decode(data))

	assert.Equal(t, theirs.Supply, ours.Supply)
	assert.Equal(t, theirs.Decimals, ours.Decimals)
	assert.Equal(t, theirs.IsInitialized, ours.IsInitialized)
	assert.Equal(t, theirs.MintAuthority, ours.MintAuthority.Ptr())
	assert.Nil(t, theirs.FreezeAuthority)
}
