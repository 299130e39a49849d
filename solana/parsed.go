package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/krazyTry/spl-token-go/u64"
	"github.com/tidwall/gjson"
)

var ErrInvalidParsedData = fmt.Errorf("%w: invalid jsonParsed data", ErrFormat)

/*
DecodeParsedAccount reads a token account returned with the jsonParsed encoding:

	{
		"parsed": {
			"info": {
				"isNative": false,
				"mint": "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
				"owner": "5HfLhj117ucm2FoqjfcSeZMf91CuJbzxZ9BeRRpZWN6m",
				"state": "initialized",
				"tokenAmount": {
					"amount": "0",
					"decimals": 6,
					"uiAmount": 0.0,
					"uiAmountString": "0"
				}
			},
			"type": "account"
		},
		"program": "spl-token",
		"space": 165
	}
*/
func DecodeParsedAccount(address solana.PublicKey, raw []byte) (*Account, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidParsedData)
	}
	parsed := gjson.GetBytes(raw, "parsed")
	if t := parsed.Get("type").String(); t != "account" {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidParsedData, t)
	}
	info := parsed.Get("info")

	acc := &Account{Address: address}

	var err error
	if acc.Mint, err = parsedPublicKey(info, "mint"); err != nil {
		return nil, err
	}
	if acc.Owner, err = parsedPublicKey(info, "owner"); err != nil {
		return nil, err
	}
	if acc.Amount, err = parsedAmount(info, "tokenAmount.amount"); err != nil {
		return nil, err
	}
	if acc.State, err = ParseAccountState(info.Get("state").String()); err != nil {
		return nil, err
	}
	if acc.Delegate, err = parsedOptionalPublicKey(info, "delegate"); err != nil {
		return nil, err
	}
	if acc.Delegate.IsSome() {
		if acc.DelegatedAmount, err = parsedAmount(info, "delegatedAmount.amount"); err != nil {
			return nil, err
		}
	}
	if info.Get("isNative").Bool() {
		reserve, err := parsedAmount(info, "rentExemptReserve.amount")
		if err != nil {
			return nil, err
		}
		acc.RentExemptReserve = Some(reserve)
	}
	if acc.CloseAuthority, err = parsedOptionalPublicKey(info, "closeAuthority"); err != nil {
		return nil, err
	}
	if err := acc.Validate(); err != nil {
		return nil, err
	}
	return acc, nil
}

// DecodeParsedMint reads a mint returned with the jsonParsed encoding.
func DecodeParsedMint(raw []byte) (*Mint, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidParsedData)
	}
	parsed := gjson.GetBytes(raw, "parsed")
	if t := parsed.Get("type").String(); t != "mint" {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidParsedData, t)
	}
	info := parsed.Get("info")

	mint := &Mint{IsInitialized: info.Get("isInitialized").Bool()}

	var err error
	if mint.MintAuthority, err = parsedOptionalPublicKey(info, "mintAuthority"); err != nil {
		return nil, err
	}
	if mint.Supply, err = parsedAmount(info, "supply"); err != nil {
		return nil, err
	}
	decimals := info.Get("decimals")
	if !decimals.Exists() || decimals.Uint() > 255 {
		return nil, fmt.Errorf("%w: decimals %q", ErrInvalidParsedData, decimals.Raw)
	}
	mint.Decimals = uint8(decimals.Uint())
	if mint.FreezeAuthority, err = parsedOptionalPublicKey(info, "freezeAuthority"); err != nil {
		return nil, err
	}
	return mint, nil
}

func parsedPublicKey(info gjson.Result, path string) (solana.PublicKey, error) {
	v := info.Get(path)
	if v.Type != gjson.String {
		return solana.PublicKey{}, fmt.Errorf("%w: missing %s", ErrInvalidParsedData, path)
	}
	key, err := solana.PublicKeyFromBase58(v.String())
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %s: %v", ErrInvalidParsedData, path, err)
	}
	return key, nil
}

// parsedOptionalPublicKey treats a missing or null value as None.
func parsedOptionalPublicKey(info gjson.Result, path string) (COption[solana.PublicKey], error) {
	v := info.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return None[solana.PublicKey](), nil
	}
	key, err := parsedPublicKey(info, path)
	if err != nil {
		return None[solana.PublicKey](), err
	}
	return Some(key), nil
}

// parsedAmount reads a u64 the RPC encodes as a decimal string.
func parsedAmount(info gjson.Result, path string) (uint64, error) {
	v := info.Get(path)
	if v.Type != gjson.String {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidParsedData, path)
	}
	amount, err := u64.FromString(v.String())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return amount, nil
}
