package solana

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

type AccountState uint8

const (
	AccountStateUninitialized AccountState = 0
	AccountStateInitialized   AccountState = 1
	AccountStateFrozen        AccountState = 2
)

func (s AccountState) String() string {
	switch s {
	case AccountStateUninitialized:
		return "uninitialized"
	case AccountStateInitialized:
		return "initialized"
	case AccountStateFrozen:
		return "frozen"
	default:
		return fmt.Sprintf("AccountState(%d)", uint8(s))
	}
}

func (s AccountState) valid() bool {
	return s <= AccountStateFrozen
}

// ParseAccountState maps the names used by the jsonParsed RPC encoding back to a state.
func ParseAccountState(name string) (AccountState, error) {
	switch name {
	case "uninitialized":
		return AccountStateUninitialized, nil
	case "initialized":
		return AccountStateInitialized, nil
	case "frozen":
		return AccountStateFrozen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountState, name)
	}
}

type Account struct {
	// Address of the account, supplied by the caller
	Address solana.PublicKey

	// Mint associated with the account
	Mint solana.PublicKey

	// Owner of the account
	Owner solana.PublicKey

	// Number of tokens the account holds
	Amount uint64

	// Authority that can transfer tokens from the account
	Delegate COption[solana.PublicKey]

	// Number of tokens the delegate is authorized to transfer, zero without a delegate
	DelegatedAmount uint64

	State AccountState

	// If the account is a native token account, it must be rent-exempt.
	// The rent-exempt reserve is the amount that must remain in the balance until the account is closed.
	RentExemptReserve COption[uint64]

	// Optional authority to close the account
	CloseAuthority COption[solana.PublicKey]
}

// IsInitialized is true for every state other than uninitialized.
func (a *Account) IsInitialized() bool {
	return a.State != AccountStateUninitialized
}

func (a *Account) IsFrozen() bool {
	return a.State == AccountStateFrozen
}

// IsNative is true if the account holds wrapped SOL.
func (a *Account) IsNative() bool {
	return a.RentExemptReserve.IsSome()
}

// Validate checks the invariants a decoded account always satisfies.
func (a *Account) Validate() error {
	if !a.State.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAccountState, uint8(a.State))
	}
	if a.Delegate.IsNone() && a.DelegatedAmount != 0 {
		return fmt.Errorf("%w: delegated amount %d without delegate", ErrFormat, a.DelegatedAmount)
	}
	return nil
}

// AccountLayout decodes token accounts fetched by address.
type AccountLayout struct{}

func (l *AccountLayout) Decode(address solana.PublicKey, data []byte) (*Account, error) {
	return DecodeAccount(address, data)
}

// DecodeAccount decodes a token account. The length of data must match TokenAccountLayout exactly.
func DecodeAccount(address solana.PublicKey, data []byte) (*Account, error) {
	if err := TokenAccountLayout.checkSize(data, ErrInvalidAccountSize); err != nil {
		return nil, err
	}

	dec := bin.NewBinDecoder(data)
	acc := &Account{Address: address}

	var err error
	if acc.Mint, err = readPublicKey(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldMint, err)
	}
	if acc.Owner, err = readPublicKey(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldOwner, err)
	}
	if acc.Amount, err = readU64(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldAmount, err)
	}
	if acc.Delegate, err = readOptionalPublicKey(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldDelegate, err)
	}

	state, err := dec.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldState, err)
	}
	acc.State = AccountState(state)
	if !acc.State.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAccountState, state)
	}

	// isNative doubles as the rent-exempt reserve; only flag 1 marks it present.
	nativeFlag, err := readOptionFlag(dec)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldIsNativeOption, err)
	}
	reserve, err := readU64(dec)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldIsNative, err)
	}
	if nativeFlag == 1 {
		acc.RentExemptReserve = Some(reserve)
	}

	delegatedAmount, err := readU64(dec)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldDelegatedAmount, err)
	}
	if acc.Delegate.IsSome() {
		acc.DelegatedAmount = delegatedAmount
	}

	if acc.CloseAuthority, err = readOptionalPublicKey(dec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FieldCloseAuthority, err)
	}
	return acc, nil
}

// EncodeAccount writes acc in the token account layout. Absent options are written
// as a zero flag followed by a zeroed payload.
func EncodeAccount(acc *Account) ([]byte, error) {
	if err := acc.Validate(); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.Grow(TokenAccountSize)
	enc := bin.NewBinEncoder(buf)

	if err := writePublicKey(enc, acc.Mint); err != nil {
		return nil, err
	}
	if err := writePublicKey(enc, acc.Owner); err != nil {
		return nil, err
	}
	if err := writeU64(enc, acc.Amount); err != nil {
		return nil, err
	}
	if err := writeOptionalPublicKey(enc, acc.Delegate); err != nil {
		return nil, err
	}
	if err := enc.WriteUint8(uint8(acc.State)); err != nil {
		return nil, err
	}
	if err := writeOptionFlag(enc, acc.RentExemptReserve.flag()); err != nil {
		return nil, err
	}
	if err := writeU64(enc, acc.RentExemptReserve.UnwrapOr(0)); err != nil {
		return nil, err
	}
	if err := writeU64(enc, acc.DelegatedAmount); err != nil {
		return nil, err
	}
	if err := writeOptionalPublicKey(enc, acc.CloseAuthority); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
