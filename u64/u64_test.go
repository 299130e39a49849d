package u64

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	v, err := Validate(big.NewInt(0))
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = Validate(Max())
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	_, err = Validate(big.NewInt(-1))
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Validate(new(big.Int).Add(Max(), big.NewInt(1)))
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Validate(nil)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMaxIsCopy(t *testing.T) {
	m := Max()
	m.SetInt64(0)
	assert.Equal(t, "18446744073709551615", Max().String())
}

func TestValidateDecimal(t *testing.T) {
	v, err := ValidateDecimal(decimal.RequireFromString("1500000"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000), v)

	v, err = ValidateDecimal(decimal.New(15, 5))
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000), v)

	_, err = ValidateDecimal(decimal.RequireFromString("1.5"))
	require.ErrorIs(t, err, ErrNotInteger)

	_, err = ValidateDecimal(decimal.NewFromInt(-3))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestScan(t *testing.T) {
	var u Uint64
	_, err := fmt.Sscan("18446744073709551615", &u)
	require.NoError(t, err)
	assert.Equal(t, Uint64(math.MaxUint64), u)

	_, err = fmt.Sscan("18446744073709551616", &u)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = fmt.Sscan("-5", &u)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestFromString(t *testing.T) {
	v, err := FromString("2039280")
	require.NoError(t, err)
	assert.Equal(t, uint64(2_039_280), v)

	_, err = FromString("12abc")
	require.Error(t, err)

	_, err = FromString("18446744073709551616")
	require.ErrorIs(t, err, ErrOutOfRange)
}
