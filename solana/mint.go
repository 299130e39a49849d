package solana

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

type Mint struct {
	// Optional authority used to mint new tokens
	MintAuthority COption[solana.PublicKey]

	// Total supply of tokens
	Supply uint64

	// Number of base 10 digits to the right of the decimal place
	Decimals uint8

	IsInitialized bool

	// Optional authority to freeze token accounts
	FreezeAuthority COption[solana.PublicKey]
}

// TokenLayout decodes mint accounts.
type TokenLayout struct{}

func (l *TokenLayout) Decode(data []byte) (*Mint, error) {
	return DecodeMint(data)
}

// DecodeMint decodes a mint. data must be exactly MintSize bytes long.
func DecodeMint(data []byte) (*Mint, error) {
	if err := MintLayout.checkSize(data, ErrInvalidMintSize); err != nil {
		return nil, err
	}

	dec := bin.NewBinDecoder(data)
	mint := &Mint{}

	var err error
	if mint.MintAuthority, err = readOptionalPublicKey(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldMintAuthority, err)
	}
	if mint.Supply, err = readU64(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldSupply, err)
	}
	if mint.Decimals, err = dec.ReadUint8(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldDecimals, err)
	}
	initialized, err := dec.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldIsInitialized, err)
	}
	mint.IsInitialized = initialized != 0
	if mint.FreezeAuthority, err = readOptionalPublicKey(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldFreezeAuthority, err)
	}
	return mint, nil
}

// EncodeMint writes mint in MintLayout. Absent authorities are written with a zero flag and a zeroed key.
func EncodeMint(mint *Mint) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(MintSize)
	enc := bin.NewBinEncoder(buf)

	if err := writeOptionalPublicKey(enc, mint.MintAuthority); err != nil {
		return nil, err
	}
	if err := writeU64(enc, mint.Supply); err != nil {
		return nil, err
	}
	if err := enc.WriteUint8(mint.Decimals); err != nil {
		return nil, err
	}
	var initialized uint8
	if mint.IsInitialized {
		initialized = 1
	}
	if err := enc.WriteUint8(initialized); err != nil {
		return nil, err
	}
	if err := writeOptionalPublicKey(enc, mint.FreezeAuthority); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
