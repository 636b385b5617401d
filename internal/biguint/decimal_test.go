package biguint

import (
	"errors"
	"strings"
	"testing"
)

func digitsOf(s string) []Digit {
	d := make([]Digit, len(s))
	for i := range s {
		d[i] = Digit(s[i] - '0')
	}
	return d
}

func TestFromDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []Limb
	}{
		{"empty", "", nil},
		{"all zeros", "0000", nil},
		{"ten digits", "1234567890", []Limb{1234567890}},
		{"exactly one limb", "9999999999999999999", []Limb{MaxLimb}},
		{"one past a limb", "10000000000000000000", []Limb{0, 1}},
		{"leading zeros dropped", "000000000000000000000042", []Limb{42}},
		{"low limb padded", "70000000000000000000000000000001", []Limb{1, 7_000_000_000_000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FromDigits(digitsOf(tt.in))
			assertLimbs(t, got, tt.want...)
			assertNormalized(t, got)
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"zero", Zero(), "0"},
		{"single zero limb", Value{limbs: []Limb{0}}, "0"},
		{"small", FromLimbs(6), "6"},
		{"max limb", FromLimbs(MaxLimb), "9999999999999999999"},
		{"carry limb", FromLimbs(0, 1), "10000000000000000000"},
		{"inner zero padding", FromLimbs(5, 0, 3), "3" + strings.Repeat("0", 37) + "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.v.DecimalDigits(); got != len(tt.want) {
				t.Errorf("DecimalDigits() = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"1234567890", "1234567890"},
		{"12345678901234567890123456789", "12345678901234567890123456789"},
		{"0001234567890", "1234567890"},
		{"0", "0"},
		{"", "0"},
		{strings.Repeat("9", 190), strings.Repeat("9", 190)},
		{"1" + strings.Repeat("0", 57), "1" + strings.Repeat("0", 57)},
	}
	for _, tt := range tests {
		if got := FromDigits(digitsOf(tt.in)).String(); got != tt.want {
			t.Errorf("String(FromDigits(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"valid", "0123456789", nil},
		{"empty", "", ErrEmpty},
		{"sign", "-12", ErrInvalidDigit},
		{"letter", "12a4", ErrInvalidDigit},
		{"space", "1 2", ErrInvalidDigit},
		{"non ascii", "１２", ErrInvalidDigit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := ParseDigits(tt.in)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ParseDigits(%q) error = %v", tt.in, err)
				}
				if len(d) != len(tt.in) {
					t.Fatalf("ParseDigits(%q) returned %d digits", tt.in, len(d))
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseDigits(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestParseAndMustParse(t *testing.T) {
	t.Parallel()
	v, err := Parse("98765432109876543210")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	assertLimbs(t, v, 8765432109876543210, 9)

	if _, err := Parse("12x"); !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("Parse(\"12x\") error = %v, want ErrInvalidDigit", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("nope")
}
