package amount

import (
	"fmt"
	"math/bits"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies,
// as used when cashing out an amount in one currency to an account held in
// another.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX indicates
// an unknown currency.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns an error wrapping [ErrRange] if:
//   - the rate is not positive;
//   - the currencies are the same and the rate is not 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("%w: exchange rate must be positive", ErrRange)
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("%w: exchange rate must be equal to 1", ErrRange)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w: %w", ErrParse, err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("constructing rate: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate as a decimal.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// IsZero returns:
//
//	true  if r == 0
//	false otherwise
func (r ExchangeRate) IsZero() bool {
	return r.value.IsZero()
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr() == r.Base() && r.value.IsPos()
}

// Conv returns the amount converted from the base currency to the quote currency.
// The product is computed exactly and then truncated to 8 digits after
// the decimal point, so the result never exceeds the exact value.
//
// Conv returns an error if:
//   - the base currency of the exchange rate does not match the currency of
//     the amount ([ErrCurrencyMismatch]);
//   - the whole part of the result is greater than [MaxValue] ([ErrRange]).
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	c, err := r.conv(b)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] at [%v]: %w", b, r, err)
	}
	return c, nil
}

// conv multiplies the amount in minor units by the coefficient of the rate
// and divides the exact product by 10^scale.
func (r ExchangeRate) conv(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	coef, scale := r.value.Coef(), r.value.Scale()

	// Amount in minor units, 128 bits
	uhi, ulo := bits.Mul64(b.value, FracBase)
	ulo, carry := bits.Add64(ulo, uint64(b.frac), 0)
	uhi += carry

	// Product, 192 bits
	w2, t := bits.Mul64(uhi, coef)
	w1, w0 := bits.Mul64(ulo, coef)
	w1, carry = bits.Add64(w1, t, 0)
	w2 += carry

	// Truncating long division by 10^scale
	div := pow10[scale]
	q2, rem := w2/div, w2%div
	qhi, rem := bits.Div64(rem, w1, div)
	qlo, _ := bits.Div64(rem, w0, div)

	// Quotient back to whole units
	if q2 != 0 || qhi >= FracBase {
		return Amount{}, fmt.Errorf("%w: whole part is greater than %v", ErrRange, uint64(MaxValue))
	}
	value, frac := bits.Div64(qhi, qlo, FracBase)
	if value > MaxValue {
		return Amount{}, fmt.Errorf("%w: whole part %v is greater than %v", ErrRange, value, uint64(MaxValue))
	}
	return newAmountUnsafe(r.Quote(), value, uint32(frac)), nil
}

// pow10 holds powers of ten up to the largest scale of a decimal.
var pow10 = [...]uint64{
	1, 10, 100, 1_000,
	10_000, 100_000, 1_000_000, 10_000_000,
	100_000_000, 1_000_000_000, 10_000_000_000, 100_000_000_000,
	1_000_000_000_000, 10_000_000_000_000, 100_000_000_000_000, 1_000_000_000_000_000,
	10_000_000_000_000_000, 100_000_000_000_000_000, 1_000_000_000_000_000_000, 10_000_000_000_000_000_000,
}

// Inv returns the inverse of the exchange rate.
//
// The inverse is rounded to [decimal.MaxPrec] digits.
//
// Inv returns an error if the inverse cannot be represented as a decimal.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d, err := r.value.Inv()
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w: %w", r, ErrRange, err)
	}
	return NewExchRate(r.Quote(), r.Base(), d)
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
// See also methods [ExchangeRate.Base] and [ExchangeRate.Quote].
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.Base() == r.Base() && q.Quote() == r.Quote()
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, for example "EUR/CHF 0.95".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().String() + "/" + r.Quote().String() + " " + r.value.String()
}
