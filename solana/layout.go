package solana

import (
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	// ErrFormat is returned for buffers that cannot hold a record of the expected layout.
	ErrFormat = errors.New("invalid account data")

	ErrInvalidAccountSize  = fmt.Errorf("%w: not a valid token account", ErrFormat)
	ErrInvalidMintSize     = fmt.Errorf("%w: not a valid mint", ErrFormat)
	ErrInvalidAccountState = fmt.Errorf("%w: invalid account state", ErrFormat)
)

// Field is one fixed-width entry of a layout.
type Field struct {
	Name string
	Size int
}

// Layout is an ordered list of fixed-width fields.
type Layout struct {
	Name   string
	Fields []Field
}

// Span returns the total byte length of the layout.
func (l Layout) Span() int {
	n := 0
	for _, f := range l.Fields {
		n += f.Size
	}
	return n
}

// Offset returns the byte offset of the named field, or -1 if the layout has no such field.
func (l Layout) Offset(name string) int {
	n := 0
	for _, f := range l.Fields {
		if f.Name == name {
			return n
		}
		n += f.Size
	}
	return -1
}

func (l Layout) checkSize(data []byte, sentinel error) error {
	if len(data) != l.Span() {
		return fmt.Errorf("%w: got %d bytes, %s layout is %d", sentinel, len(data), l.Name, l.Span())
	}
	return nil
}

const (
	publicKeySize = 32
	optionSize    = 4
	u64Size       = 8
)

// Field names of the token account layout.
const (
	FieldMint                 = "mint"
	FieldOwner                = "owner"
	FieldAmount               = "amount"
	FieldDelegateOption       = "delegateOption"
	FieldDelegate             = "delegate"
	FieldState                = "state"
	FieldIsNativeOption       = "isNativeOption"
	FieldIsNative             = "isNative"
	FieldDelegatedAmount      = "delegatedAmount"
	FieldCloseAuthorityOption = "closeAuthorityOption"
	FieldCloseAuthority       = "closeAuthority"
)

// Field names of the mint layout.
const (
	FieldMintAuthorityOption   = "mintAuthorityOption"
	FieldMintAuthority         = "mintAuthority"
	FieldSupply                = "supply"
	FieldDecimals              = "decimals"
	FieldIsInitialized         = "isInitialized"
	FieldFreezeAuthorityOption = "freezeAuthorityOption"
	FieldFreezeAuthority       = "freezeAuthority"
)

// TokenAccountLayout https://github.com/solana-labs/solana-program-library/blob/d72289c79a04411c69a8bf1054f7156b6196f9b3/token/js/src/state/account.ts#L69
var TokenAccountLayout = Layout{
	Name: "token account",
	Fields: []Field{
		{FieldMint, publicKeySize},
		{FieldOwner, publicKeySize},
		{FieldAmount, u64Size},
		{FieldDelegateOption, optionSize},
		{FieldDelegate, publicKeySize},
		{FieldState, 1},
		{FieldIsNativeOption, optionSize},
		{FieldIsNative, u64Size},
		{FieldDelegatedAmount, u64Size},
		{FieldCloseAuthorityOption, optionSize},
		{FieldCloseAuthority, publicKeySize},
	},
}

// MintLayout is the SPL token mint layout.
var MintLayout = Layout{
	Name: "mint",
	Fields: []Field{
		{FieldMintAuthorityOption, optionSize},
		{FieldMintAuthority, publicKeySize},
		{FieldSupply, u64Size},
		{FieldDecimals, 1},
		{FieldIsInitialized, 1},
		{FieldFreezeAuthorityOption, optionSize},
		{FieldFreezeAuthority, publicKeySize},
	},
}

var (
	TokenAccountSize = TokenAccountLayout.Span()
	MintSize         = MintLayout.Span()
)

func readPublicKey(dec *bin.Decoder) (solana.PublicKey, error) {
	b, err := dec.ReadNBytes(publicKeySize)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(b), nil
}

func readU64(dec *bin.Decoder) (uint64, error) {
	return dec.ReadUint64(binary.LittleEndian)
}

func readOptionFlag(dec *bin.Decoder) (uint32, error) {
	return dec.ReadUint32(binary.LittleEndian)
}

// readOptionalPublicKey reads a flag and its 32 byte payload. A zero flag yields None,
// any other value yields the payload.
func readOptionalPublicKey(dec *bin.Decoder) (COption[solana.PublicKey], error) {
	flag, err := readOptionFlag(dec)
	if err != nil {
		return None[solana.PublicKey](), err
	}
	key, err := readPublicKey(dec)
	if err != nil {
		return None[solana.PublicKey](), err
	}
	if flag == 0 {
		return None[solana.PublicKey](), nil
	}
	return Some(key), nil
}

func writePublicKey(enc *bin.Encoder, key solana.PublicKey) error {
	return enc.WriteBytes(key[:], false)
}

func writeU64(enc *bin.Encoder, v uint64) error {
	return enc.WriteUint64(v, binary.LittleEndian)
}

func writeOptionFlag(enc *bin.Encoder, flag uint32) error {
	return enc.WriteUint32(flag, binary.LittleEndian)
}

func writeOptionalPublicKey(enc *bin.Encoder, o COption[solana.PublicKey]) error {
	if err := writeOptionFlag(enc, o.flag()); err != nil {
		return err
	}
	return writePublicKey(enc, o.UnwrapOr(solana.PublicKey{}))
}
