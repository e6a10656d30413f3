package amount

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/JohnCGriffin/overflow"
	"github.com/govalues/decimal"
)

const (
	// MaxValue is the largest whole-unit value of an amount.
	MaxValue = 1 << 52
	// FracBase is the number of fraction units in one whole unit.
	FracBase = 100_000_000
	// MaxFrac is the largest fraction of an amount.
	MaxFrac = FracBase - 1
	// FracDigits is the maximum number of digits after the decimal point.
	FracDigits = 8
)

var (
	// ErrParse is returned when the text of an amount is malformed.
	ErrParse = errors.New("invalid amount syntax")
	// ErrRange is returned when a well-formed number does not fit an amount.
	ErrRange = errors.New("amount out of range")
	// ErrOverflow is returned when a result would exceed the largest amount.
	ErrOverflow = errors.New("amount overflow")
	// ErrUnderflow is returned when a result would be negative.
	ErrUnderflow = errors.New("amount underflow")
	// ErrCurrencyMismatch is returned when two amounts of different currencies
	// are combined or compared.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Amount type represents a non-negative monetary amount with a fixed precision
// of 8 digits after the decimal point.
// Its zero value corresponds to "0 XXX", where [XXX] indicates an unknown currency.
//
// An amount consists of a whole part in the range [0, 2^52] and a fraction
// in hundred-millionths of one whole unit in the range [0, 99999999].
// The bounds match the wire protocol, so every Amount can be exchanged with
// protocol peers without loss.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency // protocol currency
	value uint64   // whole units
	frac  uint32   // hundred-millionths of a whole unit
}

// newAmountUnsafe creates a new amount without checking the bounds.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, value uint64, frac uint32) Amount {
	return Amount{curr: c, value: value, frac: frac}
}

// newAmountSafe creates a new amount and checks the bounds.
func newAmountSafe(c Currency, value uint64, frac uint32) (Amount, error) {
	if value > MaxValue {
		return Amount{}, fmt.Errorf("%w: whole part %v is greater than %v", ErrRange, value, uint64(MaxValue))
	}
	if frac > MaxFrac {
		return Amount{}, fmt.Errorf("%w: fraction %v is greater than %v", ErrRange, frac, MaxFrac)
	}
	return newAmountUnsafe(c, value, frac), nil
}

// NewAmount returns an amount equal to value + frac / 10^8.
//
// NewAmount returns an error if:
//   - the currency code is not valid;
//   - the value is greater than [MaxValue];
//   - the fraction is greater than [MaxFrac].
func NewAmount(curr string, value uint64, frac uint32) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	a, err := newAmountSafe(c, value, frac)
	if err != nil {
		return Amount{}, fmt.Errorf("converting components: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr string, value uint64, frac uint32) Amount {
	a, err := NewAmount(curr, value, frac)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, value, frac, err))
	}
	return a
}

// NewAmountFromMinorUnits converts an integer, representing hundred-millionths
// of a whole unit, to an amount.
// This is the form in which ledgers usually persist amounts.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if currency code is not valid.
func NewAmountFromMinorUnits(curr string, units uint64) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// The largest uint64 is about 1.8 * 10^11 whole units, well below MaxValue.
	return newAmountUnsafe(c, units/FracBase, uint32(units%FracBase)), nil
}

// NewAmountFromDecimal converts a decimal to an amount with the specified currency.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the decimal is negative;
//   - the decimal has more than [FracDigits] significant digits after the decimal point;
//   - the integer part of the decimal is greater than [MaxValue].
func NewAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	if d.IsNeg() {
		return Amount{}, fmt.Errorf("converting %v: %w: negative amount", d, ErrRange)
	}
	if d.MinScale() > FracDigits {
		return Amount{}, fmt.Errorf("converting %v: %w: more than %v digits after the decimal point", d, ErrRange, FracDigits)
	}
	whole, frac, ok := d.Int64(FracDigits)
	if !ok {
		return Amount{}, fmt.Errorf("converting %v: %w", d, ErrRange)
	}
	a, err := newAmountSafe(curr, uint64(whole), uint32(frac)) //nolint:gosec
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return a, nil
}

// ParseAmount converts currency and number strings to an amount.
// The number must be an integer, optionally followed by a decimal point
// and 1 to 8 fractional digits:
//
//	5
//	5.1
//	0.00000001
//
// The fraction is scaled to hundred-millionths exactly, without any
// intermediate floating-point conversion.
// See also constructors [ParseCurr] and [ParseWire].
//
// ParseAmount returns an error if:
//   - the currency code is not valid ([ErrInvalidCurrency]);
//   - the number is malformed or has more than 8 fractional digits ([ErrParse]);
//   - the integer part is greater than [MaxValue] ([ErrRange]).
func ParseAmount(curr, num string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	value, frac, err := parseNum(num)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing number %q: %w", num, err)
	}
	return newAmountUnsafe(c, value, frac), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, num string) Amount {
	a, err := ParseAmount(curr, num)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, num, err))
	}
	return a
}

// ParseWire converts a string in the canonical wire form to an amount.
// The wire form is a currency code and a number separated by a colon:
//
//	EUR:5
//	KUDOS:42.1337
//
// The string is split at the first colon and the parts are passed to [ParseAmount].
// See also method [Amount.Wire].
//
// ParseWire returns an error if the separator is missing or if ParseAmount fails.
func ParseWire(s string) (Amount, error) {
	curr, num, ok := strings.Cut(s, ":")
	if !ok {
		return Amount{}, fmt.Errorf("parsing %q: %w: missing currency separator", s, ErrParse)
	}
	a, err := ParseAmount(curr, num)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return a, nil
}

// MustParseWire is like [ParseWire] but panics if the string cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseWire(s string) Amount {
	a, err := ParseWire(s)
	if err != nil {
		panic(fmt.Sprintf("ParseWire(%q) failed: %v", s, err))
	}
	return a
}

// parseNum parses INTEGER ["." 1*8DIGIT].
// Syntax is checked over the whole string before the range.
func parseNum(s string) (value uint64, frac uint32, err error) {
	whole, fracs, dot := strings.Cut(s, ".")
	if !isDigits(whole) {
		return 0, 0, fmt.Errorf("%w: integer part %q is not a non-negative integer", ErrParse, whole)
	}
	if dot {
		if len(fracs) == 0 || len(fracs) > FracDigits {
			return 0, 0, fmt.Errorf("%w: fractional part has %v digits, want 1 to %v", ErrParse, len(fracs), FracDigits)
		}
		if !isDigits(fracs) {
			return 0, 0, fmt.Errorf("%w: fractional part %q is not a sequence of digits", ErrParse, fracs)
		}
	}

	// Integer part
	for i := 0; i < len(whole); i++ {
		value = value*10 + uint64(whole[i]-'0')
		if value > MaxValue {
			return 0, 0, fmt.Errorf("%w: integer part %v is greater than %v", ErrRange, whole, uint64(MaxValue))
		}
	}

	// Fractional part, right-padded with zeros to 8 digits
	for i := 0; i < FracDigits; i++ {
		frac *= 10
		if i < len(fracs) {
			frac += uint32(fracs[i] - '0')
		}
	}
	return value, frac, nil
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Zero returns an amount of 0 in the specified currency.
func Zero(curr Currency) Amount {
	return newAmountUnsafe(curr, 0, 0)
}

// MinAmount returns the smallest positive amount, 0.00000001,
// in the specified currency.
func MinAmount(curr Currency) Amount {
	return newAmountUnsafe(curr, 0, 1)
}

// MaxAmount returns the largest amount, 4503599627370496.99999999,
// in the specified currency.
func MaxAmount(curr Currency) Amount {
	return newAmountUnsafe(curr, MaxValue, MaxFrac)
}

// MinorUnits returns the amount in hundred-millionths of a whole unit.
// See also constructor [NewAmountFromMinorUnits].
//
// If the result cannot be represented as an uint64, then false is returned.
func (a Amount) MinorUnits() (units uint64, ok bool) {
	hi, lo := bits.Mul64(a.value, FracBase)
	lo, carry := bits.Add64(lo, uint64(a.frac), 0)
	if hi != 0 || carry != 0 {
		return 0, false
	}
	return lo, true
}

// Decimal returns the decimal representation of the amount,
// with trailing zeros removed.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the amount has more significant digits
// than [decimal.MaxPrec].
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := a.decimal()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w: %w", a, ErrRange, err)
	}
	return d, nil
}

func (a Amount) decimal() (decimal.Decimal, error) {
	whole, err := decimal.New(int64(a.value), 0) //nolint:gosec
	if err != nil {
		return decimal.Decimal{}, err
	}
	frac, err := decimal.New(int64(a.frac), FracDigits)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := whole.AddExact(frac, FracDigits)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Trim(0), nil
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Whole returns the whole-unit part of the amount.
func (a Amount) Whole() uint64 {
	return a.value
}

// Frac returns the fractional part of the amount in hundred-millionths
// of a whole unit.
func (a Amount) Frac() uint32 {
	return a.frac
}

// WithCurr returns an amount with the same value denominated in currency c.
func (a Amount) WithCurr(c Currency) Amount {
	return newAmountUnsafe(c, a.value, a.frac)
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value == 0 && a.frac == 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return !a.IsZero()
}

// Zero returns an amount with a value of 0, having the same currency as amount a.
// See also method [Amount.ULP].
func (a Amount) Zero() Amount {
	return Zero(a.Curr())
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// amount, 0.00000001, having the same currency as amount a.
// See also method [Amount.Zero].
func (a Amount) ULP() Amount {
	return MinAmount(a.Curr())
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies ([ErrCurrencyMismatch]);
//   - the whole part of the result is greater than [MaxValue] ([ErrOverflow]).
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	value, frac := a.value+b.value, a.frac+b.frac
	if frac >= FracBase {
		frac -= FracBase
		value++
	}
	if value > MaxValue {
		return Amount{}, ErrOverflow
	}
	return newAmountUnsafe(a.Curr(), value, frac), nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies ([ErrCurrencyMismatch]);
//   - amount b is greater than amount a ([ErrUnderflow]).
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

// SubAbs returns the absolute difference between amounts a and b.
//
// SubAbs returns an error if amounts are denominated in different currencies.
func (a Amount) SubAbs(b Amount) (Amount, error) {
	c, err := a.subAbs(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [abs(%v - %v)]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) subAbs(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	if a.cmp(b) < 0 {
		return b.sub(a)
	}
	return a.sub(b)
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	value, frac := a.value, a.frac
	if frac < b.frac {
		// Borrow
		if value == 0 {
			return Amount{}, ErrUnderflow
		}
		value--
		frac += FracBase
	}
	if value < b.value {
		return Amount{}, ErrUnderflow
	}
	return newAmountUnsafe(a.Curr(), value-b.value, frac-b.frac), nil
}

// Mul returns the product of amount a and a non-negative integer factor.
// The result is the same as adding a to itself factor times, and Mul fails
// exactly when such repeated addition would fail.
//
// Mul returns an error if:
//   - the factor is negative ([ErrRange]);
//   - the whole part of the result is greater than [MaxValue] ([ErrOverflow]).
func (a Amount) Mul(factor int) (Amount, error) {
	c, err := a.mul(factor)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, factor, err)
	}
	return c, nil
}

// mul computes a * e in closed form.
// Running totals of repeated addition never decrease, so an iterative
// multiplication overflows at some step iff the final product has a whole
// part above MaxValue. Checking the final product is therefore enough.
func (a Amount) mul(factor int) (Amount, error) {
	if factor < 0 {
		return Amount{}, fmt.Errorf("%w: negative factor", ErrRange)
	}
	if factor == 0 || a.IsZero() {
		return a.Zero(), nil
	}
	e := int64(factor)

	// Whole part
	value, ok := overflow.Mul64(int64(a.value), e) //nolint:gosec
	if !ok || value > MaxValue {
		return Amount{}, ErrOverflow
	}

	// Fractional part, hi < FracBase since frac < FracBase
	hi, lo := bits.Mul64(uint64(a.frac), uint64(e))
	carry, frac := bits.Div64(hi, lo, FracBase)

	// Carry
	value, ok = overflow.Add64(value, int64(carry)) //nolint:gosec
	if !ok || value > MaxValue {
		return Amount{}, ErrOverflow
	}
	return newAmountUnsafe(a.Curr(), uint64(value), uint32(frac)), nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one [Amount.ULP] each.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrRange)
	}
	p := uint64(parts)

	// Amount in minor units, as a 128-bit integer
	hi, lo := bits.Mul64(a.value, FracBase)
	lo, carry := bits.Add64(lo, uint64(a.frac), 0)
	hi += carry

	// Quotient and remainder
	qhi, r := hi/p, hi%p
	qlo, rem := bits.Div64(r, lo, p)

	// Quotient back to whole units, qhi < FracBase since a <= MaxAmount
	value, frac := bits.Div64(qhi, qlo, FracBase)
	quo := newAmountUnsafe(a.Curr(), value, uint32(frac))

	res := make([]Amount, parts)
	ulp := a.ULP()
	for i := range res {
		res[i] = quo
		// Remainder distribution
		if uint64(i) < rem {
			var err error
			res[i], err = res[i].add(ulp)
			if err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.cmp(b), nil
}

func (a Amount) cmp(b Amount) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	case a.frac < b.frac:
		return -1
	case a.frac > b.frac:
		return 1
	}
	return 0
}

// Min returns the smaller amount.
// See also method [Amount.Cmp].
//
// Min returns an error if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
// See also method [Amount.Cmp].
//
// Max returns an error if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// Clamp compares amounts and returns:
//
//	min if a < min
//	max if a > max
//	  a otherwise
//
// Clamp returns an error if:
//   - amounts are denominated in different currencies;
//   - min is greater than max.
func (a Amount) Clamp(min, max Amount) (Amount, error) {
	switch c, err := min.Cmp(max); {
	case err != nil:
		return Amount{}, err
	case c > 0: // min > max
		return Amount{}, fmt.Errorf("clamping %v: %w: invalid range [%v, %v]", a, ErrRange, min, max)
	}
	switch c, err := a.Cmp(min); {
	case err != nil:
		return Amount{}, err
	case c < 0: // a < min
		return min, nil
	}
	switch c, err := a.Cmp(max); {
	case err != nil:
		return Amount{}, err
	case c > 0: // a > max
		return max, nil
	}
	return a, nil
}

// appendNum appends the canonical number: the whole part, followed by
// a decimal point and the shortest digit sequence of the fraction, if any.
// At least mindigs fractional digits are written.
func (a Amount) appendNum(dst []byte, mindigs int) []byte {
	dst = strconv.AppendUint(dst, a.value, 10)
	frac := a.frac
	if frac == 0 && mindigs == 0 {
		return dst
	}
	dst = append(dst, '.')
	// Leading digits of the 8-digit fraction, until the remainder is zero
	n := 0
	for div := uint32(FracBase / 10); div > 0 && (frac != 0 || n < mindigs); div /= 10 {
		d := frac / div
		dst = append(dst, byte(d)+'0')
		frac -= d * div
		n++
	}
	return dst
}

func (a Amount) appendWire(dst []byte) []byte {
	dst = append(dst, a.Curr().Code()...)
	dst = append(dst, ':')
	return a.appendNum(dst, 0)
}

func (a Amount) appendString(dst []byte) []byte {
	dst = a.appendNum(dst, 0)
	dst = append(dst, ' ')
	return append(dst, a.Curr().Code()...)
}

// Number returns the canonical number of the amount without the currency,
// for example "1.5".
// See also methods [Amount.Wire] and [Amount.String].
func (a Amount) Number() string {
	return string(a.appendNum(make([]byte, 0, 26), 0))
}

// Wire returns the canonical wire form of the amount, for example "EUR:1.5".
// Independent implementations of the protocol produce the same string for
// the same amount. See also constructor [ParseWire].
func (a Amount) Wire() string {
	return string(a.appendWire(make([]byte, 0, 40)))
}

// String implements the [fmt.Stringer] interface and returns the display
// form of an amount, for example "1.5 EUR".
// The display form is informational, use [Amount.Wire] for exchanging amounts.
// See also methods [Currency.String], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return string(a.appendString(make([]byte, 0, 40)))
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | 5.678 EUR   | Amount and currency        |
//	| %q     | "5.678 EUR" | Quoted amount and currency |
//	| %f     | 5.678       | Amount                     |
//	| %c     | EUR         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '0' format flag can be used with the %f verb.
//
// Precision is only supported for the %f verb.
// It sets the minimum number of digits after the decimal point, up to 8.
// The amount is never rounded.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 'f', 'F':
		mindigs := 0
		if p, ok := state.Precision(); ok {
			mindigs = min(p, FracDigits)
		}
		buf = a.appendNum(buf, mindigs)
		// Leading zeros
		if w, ok := state.Width(); ok && w > len(buf) && state.Flag('0') && !state.Flag('-') {
			zeros := make([]byte, w-len(buf), w)
			for i := range zeros {
				zeros[i] = '0'
			}
			buf = append(zeros, buf...)
		}
	case 'c', 'C':
		buf = append(buf, a.Curr().Code()...)
	case 'q', 'Q':
		buf = append(buf, '"')
		buf = a.appendString(buf)
		buf = append(buf, '"')
	default:
		buf = a.appendString(buf)
	}

	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		writePadded(state, buf)
	default:
		writeBadVerb(state, verb, "amount.Amount", buf)
	}
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The amount is expected as a JSON string in the wire form, "EUR:1.5".
// See also constructor [ParseWire].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	s, err := unquoteJSON(text)
	if err == nil {
		*a, err = ParseWire(s)
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the wire form as a JSON string.
// See also method [Amount.Wire].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 42)
	text = append(text, '"')
	text = a.appendWire(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseWire].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseWire(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the wire form.
// See also method [Amount.Wire].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	return a.appendWire(text), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the wire form.
// See also method [Amount.Wire].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.AppendText(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The binary form is identical to the wire form.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (a *Amount) UnmarshalBinary(data []byte) error {
	return a.UnmarshalText(data)
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (a Amount) AppendBinary(data []byte) ([]byte, error) {
	return a.AppendText(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (a Amount) MarshalBinary() ([]byte, error) {
	return a.AppendText(nil)
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// Amounts are stored as BSON strings in the wire form.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (a *Amount) UnmarshalBSONValue(typ byte, data []byte) error {
	var err error
	switch typ {
	case bsonString:
		var s string
		s, err = parseBSONString(data)
		if err == nil {
			*a, err = ParseWire(s)
		}
	case bsonNull:
		// do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Amount{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (a Amount) MarshalBSONValue() (typ byte, data []byte, err error) {
	return bsonString, appendBSONString(nil, a.Wire()), nil
}

// Scan implements the [sql.Scanner] interface.
// The column is expected to hold the wire form.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = ParseWire(value)
	case []byte:
		*a, err = ParseWire(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Amount{}, NullAmount{}, Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns the wire form.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.Wire(), nil
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is not thread-safe.
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Amount.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Amount.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullAmount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Amount.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Amount.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullAmount) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == bsonNull {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Amount.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Amount.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullAmount) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return bsonNull, nil, nil
	}
	return n.Amount.MarshalBSONValue()
}
