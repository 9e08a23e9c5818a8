// Package cpf parses and validates Brazilian individual taxpayer registry
// numbers (Cadastro de Pessoas Físicas).
//
// A CPF is 11 decimal digits: nine base digits followed by two check digits
// computed with a weighted mod-11 sum. The CPF type can only be obtained
// through New or Parse, so every non-zero CPF value in a program has already
// passed validation.
package cpf

import "strconv"

// MaxValue is the largest integer that fits in 11 decimal digits.
const MaxValue uint64 = 99_999_999_999

const (
	numDigits = 11
	numBase   = 9
	formatLen = 14 // XXX.XXX.XXX-XX
	firstDot  = 3
	secondDot = 7
	dashPos   = 11
)

// CPF is a validated, immutable CPF number.
type CPF struct {
	value uint64
}

// New builds a CPF from its numeric value. Numbers with fewer than 11
// digits are treated as having leading zeros, so 1678346063 is the CPF
// 016.783.460-63.
func New(value uint64) (CPF, error) {
	if value > MaxValue {
		return CPF{}, newParseError(strconv.FormatUint(value, 10), ErrInvalidLength)
	}

	if err := validate(CPF{value: value}.Digits()); err != nil {
		return CPF{}, newParseError(strconv.FormatUint(value, 10), err)
	}
	return CPF{value: value}, nil
}

// Parse builds a CPF from either 11 plain digits ("01678346063") or the
// punctuated form ("016.783.460-63").
func Parse(s string) (CPF, error) {
	var digits [numDigits]uint8
	count := 0
	separators := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if count < numDigits {
				digits[count] = c - '0'
			}
			count++
		case c == '.' || c == '-':
			separators = true
		default:
			return CPF{}, newParseError(s, ErrInvalidFormat)
		}
	}

	if count != numDigits {
		return CPF{}, newParseError(s, ErrInvalidLength)
	}
	if separators && !isCanonicalFormat(s) {
		return CPF{}, newParseError(s, ErrInvalidFormat)
	}
	if err := validate(digits); err != nil {
		return CPF{}, newParseError(s, err)
	}

	var value uint64
	for _, d := range digits {
		value = value*10 + uint64(d)
	}
	return CPF{value: value}, nil
}

// MustParse is like Parse but panics if s is not a valid CPF.
func MustParse(s string) CPF {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValid reports whether s parses as a valid CPF.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Value returns the CPF as an integer. Leading zeros are not represented.
func (c CPF) Value() uint64 {
	return c.value
}

// Digits returns the 11 digits of the CPF, zero padded.
func (c CPF) Digits() [11]uint8 {
	var digits [numDigits]uint8
	n := c.value
	for i := numDigits - 1; i >= 0; i-- {
		digits[i] = uint8(n % 10)
		n /= 10
	}
	return digits
}

// String returns the canonical 11-digit representation, zero padded.
func (c CPF) String() string {
	var buf [numDigits]byte
	for i, d := range c.Digits() {
		buf[i] = '0' + d
	}
	return string(buf[:])
}

// IsZero reports whether c is the zero value, i.e. it was not produced by
// New or Parse.
func (c CPF) IsZero() bool {
	return c.value == 0
}

func validate(digits [numDigits]uint8) error {
	if allSame(digits) {
		return ErrRepeatedDigits
	}

	var base [numBase]uint8
	copy(base[:], digits[:numBase])

	d10, d11 := checkDigits(base)
	if digits[9] != d10 || digits[10] != d11 {
		return ErrInvalidChecksum
	}
	return nil
}

// checkDigits derives the two check digits from the nine base digits.
func checkDigits(base [numBase]uint8) (uint8, uint8) {
	sum := 0
	for i, d := range base {
		sum += int(d) * (10 - i)
	}
	d10 := remainderDigit(sum)

	sum = 0
	for i, d := range base {
		sum += int(d) * (11 - i)
	}
	sum += int(d10) * 2
	d11 := remainderDigit(sum)

	return d10, d11
}

func remainderDigit(sum int) uint8 {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return uint8(11 - r)
}

func allSame(digits [numDigits]uint8) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func isCanonicalFormat(s string) bool {
	if len(s) != formatLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case firstDot, secondDot:
			if s[i] != '.' {
				return false
			}
		case dashPos:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}
