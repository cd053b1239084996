package types

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/NilFoundation/zkpaymaster/common/check"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeValue   = errors.New("value must not be negative")
	ErrFractionalWei   = errors.New("value has a fractional wei part")
	ErrValueOverflow   = errors.New("value exceeds 256 bits")
	ErrInvalidValueStr = errors.New("invalid value")
)

// EtherDecimals is the number of decimals between wei and ether.
const EtherDecimals = 18

// Longest suffixes first, so that "gwei" is not taken for "wei".
var unitSuffixes = []struct {
	suffix string
	exp    int32
}{
	{"ether", EtherDecimals},
	{"gwei", 9},
	{"eth", EtherDecimals},
	{"wei", 0},
}

// Value is an amount of native currency in wei.
// The zero Value is valid and equals 0.
type Value struct {
	u *uint256.Int
}

func NewValueFromUint64(val uint64) Value {
	return Value{u: uint256.NewInt(val)}
}

func NewZeroValue() Value {
	return Value{}
}

// NewValueFromBig returns the value and true if it does not fit into 256 bits or is negative.
func NewValueFromBig(val *big.Int) (Value, bool) {
	if val.Sign() < 0 {
		return Value{}, true
	}
	res, overflow := uint256.FromBig(val)
	if overflow {
		return Value{}, true
	}
	return Value{u: res}, false
}

// ParseValue parses an amount: plain wei ("1000"), hex wei ("0x3e8"),
// or a decimal number with a unit suffix ("1wei", "2gwei", "0.5eth", "1 ether").
func ParseValue(str string) (Value, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty string", ErrInvalidValueStr)
	}

	if strings.HasPrefix(s, "0x") {
		b, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidValueStr, str)
		}
		res, overflow := NewValueFromBig(b)
		if overflow {
			return Value{}, ErrValueOverflow
		}
		return res, nil
	}

	var exp int32
	for _, unit := range unitSuffixes {
		if strings.HasSuffix(s, unit.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
			exp = unit.exp
			break
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %w", ErrInvalidValueStr, str, err)
	}
	if d.IsNegative() {
		return Value{}, ErrNegativeValue
	}
	d = d.Shift(exp)
	if !d.IsInteger() {
		return Value{}, fmt.Errorf("%w: %q", ErrFractionalWei, str)
	}

	res, overflow := NewValueFromBig(d.BigInt())
	if overflow {
		return Value{}, ErrValueOverflow
	}
	return res, nil
}

func MustParseValue(str string) Value {
	v, err := ParseValue(str)
	check.PanicIfErr(err)
	return v
}

func (v Value) safeInt() *uint256.Int {
	if v.u == nil {
		return new(uint256.Int)
	}
	return v.u
}

func (v Value) IsZero() bool {
	return v.u == nil || v.u.IsZero()
}

func (v Value) Cmp(other Value) int {
	return v.safeInt().Cmp(other.safeInt())
}

func (v Value) Eq(other Value) bool {
	return v.Cmp(other) == 0
}

func (v Value) Add(other Value) Value {
	res, overflow := new(uint256.Int).AddOverflow(v.safeInt(), other.safeInt())
	check.PanicIfNot(!overflow)
	return Value{u: res}
}

func (v Value) Sub(other Value) Value {
	res, underflow := new(uint256.Int).SubOverflow(v.safeInt(), other.safeInt())
	check.PanicIfNot(!underflow)
	return Value{u: res}
}

func (v Value) ToBig() *big.Int {
	return v.safeInt().ToBig()
}

// Ether formats the value in ether without trailing zeros, e.g. "0.5".
func (v Value) Ether() string {
	return FormatEther(v.ToBig())
}

// FormatEther formats a wei amount in ether.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals).String()
}

func (v Value) String() string {
	return v.safeInt().Dec()
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalText(input []byte) error {
	res, err := ParseValue(string(input))
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

func (v *Value) UnmarshalJSON(input []byte) error {
	return v.UnmarshalText([]byte(strings.Trim(string(input), `"`)))
}

// Set implements pflag.Value.
func (v *Value) Set(value string) error {
	return v.UnmarshalText([]byte(value))
}

func (Value) Type() string {
	return "value"
}
