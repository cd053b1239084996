package types

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"1wei", "1"},
		{"2gwei", "2000000000"},
		{"0.5eth", "500000000000000000"},
		{"0.5 ether", "500000000000000000"},
		{"1ETH", "1000000000000000000"},
		{"1.5gwei", "1500000000"},
		{"0x3e8", "1000"},
		{"  42  ", "42"},
	}
	for _, test := range tests {
		v, err := ParseValue(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, v.String(), test.in)
	}
}

func TestParseValueErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseValue("")
	require.ErrorIs(t, err, ErrInvalidValueStr)

	_, err = ParseValue("abc")
	require.ErrorIs(t, err, ErrInvalidValueStr)

	_, err = ParseValue("-1")
	require.ErrorIs(t, err, ErrNegativeValue)

	_, err = ParseValue("0.5wei")
	require.ErrorIs(t, err, ErrFractionalWei)

	_, err = ParseValue("0x1" + strings.Repeat("0", 64))
	require.ErrorIs(t, err, ErrValueOverflow)
}

func TestValueEther(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.5", MustParseValue("0.5eth").Ether())
	assert.Equal(t, "0", NewZeroValue().Ether())
	assert.Equal(t, "0.000000000000000001", NewValueFromUint64(1).Ether())
	assert.Equal(t, "0", FormatEther(nil))
}

func TestValueZero(t *testing.T) {
	t.Parallel()

	var v Value
	assert.True(t, v.IsZero())
	assert.Equal(t, "0", v.String())
	assert.Equal(t, 0, v.ToBig().Sign())
	assert.True(t, v.Eq(NewValueFromUint64(0)))
}

func TestValueJson(t *testing.T) {
	t.Parallel()

	str, err := json.Marshal(Value{})
	require.NoError(t, err)
	assert.JSONEq(t, `"0"`, string(str))

	str, err = json.Marshal(MustParseValue("2gwei"))
	require.NoError(t, err)
	assert.JSONEq(t, `"2000000000"`, string(str))

	var v Value
	require.NoError(t, json.Unmarshal([]byte(`"0.25eth"`), &v))
	assert.Equal(t, "250000000000000000", v.String())
}

func TestValueFlag(t *testing.T) {
	t.Parallel()

	var v Value
	require.NoError(t, v.Set("3gwei"))
	assert.Equal(t, "3000000000", v.String())
	assert.Equal(t, "value", v.Type())
	require.Error(t, v.Set("nope"))
}

func TestValueArithmetic(t *testing.T) {
	t.Parallel()

	a := NewValueFromUint64(10)
	b := NewValueFromUint64(3)
	assert.Equal(t, "13", a.Add(b).String())
	assert.Equal(t, "7", a.Sub(b).String())
	assert.Equal(t, 1, a.Cmp(b))
	assert.Panics(t, func() { b.Sub(a) })

	_, overflow := NewValueFromBig(big.NewInt(-1))
	assert.True(t, overflow)
}

func TestValueRoundTripProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		wei := rapid.Uint64().Draw(t, "wei")
		v := NewValueFromUint64(wei)

		parsed, err := ParseValue(v.String())
		require.NoError(t, err)
		require.True(t, v.Eq(parsed))

		parsed, err = ParseValue(v.Ether() + "eth")
		require.NoError(t, err)
		require.True(t, v.Eq(parsed))
	})
}
