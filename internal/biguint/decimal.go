package biguint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned when parsing an empty digit string.
	ErrEmpty = errors.New("empty digit string")
	// ErrInvalidDigit is returned when parsing meets a non-decimal symbol.
	ErrInvalidDigit = errors.New("invalid decimal digit")
)

// FromDigits builds a Value from decimal digits, most significant first.
// Digits are grouped in blocks of LimbDigits from the least-significant end,
// one block per limb. Leading zeros are dropped; empty input yields zero.
func FromDigits(digits []Digit) Value {
	if len(digits) == 0 {
		return Value{}
	}
	z := make([]Limb, ceilDiv(len(digits), LimbDigits))
	end := len(digits)
	for i := range z {
		start := max(end-LimbDigits, 0)
		var limb Limb
		for _, d := range digits[start:end] {
			limb = limb*10 + Limb(d)
		}
		z[i] = limb
		end = start
	}
	return Value{limbs: trimLimbs(z)}
}

// ParseDigits converts a string of ASCII decimal digits into Digits.
// Errors wrap ErrEmpty or ErrInvalidDigit.
func ParseDigits(s string) ([]Digit, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	digits := make([]Digit, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidDigit, c, i)
		}
		digits[i] = Digit(c - '0')
	}
	return digits, nil
}

// Parse parses a decimal string into a Value.
func Parse(s string) (Value, error) {
	digits, err := ParseDigits(s)
	if err != nil {
		return Value{}, err
	}
	return FromDigits(digits), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// constants in tests and examples.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders v in decimal. The most-significant limb is written without
// padding and every other limb is zero-padded to LimbDigits digits.
func (v Value) String() string {
	x := trimLimbs(v.limbs)
	if len(x) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(decimalLen(x))
	var buf [LimbDigits]byte
	sb.Write(strconv.AppendUint(buf[:0], x[len(x)-1], 10))
	for i := len(x) - 2; i >= 0; i-- {
		s := strconv.AppendUint(buf[:0], x[i], 10)
		for pad := LimbDigits - len(s); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.Write(s)
	}
	return sb.String()
}

// DecimalDigits returns the number of digits in the decimal rendering of v.
// Zero has one digit.
func (v Value) DecimalDigits() int {
	x := trimLimbs(v.limbs)
	if len(x) == 0 {
		return 1
	}
	return decimalLen(x)
}
