package amount

import (
	"errors"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	r := ExchangeRate{}
	if !r.IsZero() {
		t.Errorf("ExchangeRate{}.IsZero() = false, want true")
	}
	if got, want := r.String(), "XXX/XXX 0"; got != want {
		t.Errorf("ExchangeRate{}.String() = %q, want %q", got, want)
	}
	if r.CanConv(Amount{}) {
		t.Errorf("ExchangeRate{}.CanConv(Amount{}) = true, want false")
	}
}

func TestNewExchRate(t *testing.T) {
	eur, chf := MustParseCurr("EUR"), MustParseCurr("CHF")

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote Currency
			rate        string
		}{
			{eur, chf, "0.95"},
			{eur, chf, "1000000"},
			{eur, chf, "0.000000001"},
			{eur, eur, "1"},
			{eur, eur, "1.000"},
		}
		for _, tt := range tests {
			d := decimal.MustParse(tt.rate)
			got, err := NewExchRate(tt.base, tt.quote, d)
			if err != nil {
				t.Errorf("NewExchRate(%v, %v, %v) failed: %v", tt.base, tt.quote, d, err)
				continue
			}
			if got.Base() != tt.base || got.Quote() != tt.quote || got.Decimal() != d {
				t.Errorf("NewExchRate(%v, %v, %v) = %v", tt.base, tt.quote, d, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote Currency
			rate        string
		}{
			"zero":     {eur, chf, "0"},
			"negative": {eur, chf, "-0.95"},
			"same 1":   {eur, eur, "0.95"},
			"same 2":   {chf, chf, "2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d := decimal.MustParse(tt.rate)
				_, err := NewExchRate(tt.base, tt.quote, d)
				if !errors.Is(err, ErrRange) {
					t.Errorf("NewExchRate(%v, %v, %v) = %v, want %v", tt.base, tt.quote, d, err, ErrRange)
				}
			})
		}
	})
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, err := ParseExchRate("KUDOS", "EUR", "0.01")
		if err != nil {
			t.Fatalf("ParseExchRate(\"KUDOS\", \"EUR\", \"0.01\") failed: %v", err)
		}
		if got, want := r.String(), "KUDOS/EUR 0.01"; got != want {
			t.Errorf("ParseExchRate(\"KUDOS\", \"EUR\", \"0.01\") = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote, rate string
			want              error
		}{
			"base 1":  {"", "EUR", "1", ErrInvalidCurrency},
			"quote 1": {"EUR", "E R", "1", ErrInvalidCurrency},
			"rate 1":  {"EUR", "CHF", "abc", ErrParse},
			"rate 2":  {"EUR", "CHF", "-1", ErrRange},
			"rate 3":  {"EUR", "EUR", "2", ErrRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseExchRate(tt.base, tt.quote, tt.rate)
				if !errors.Is(err, tt.want) {
					t.Errorf("ParseExchRate(%q, %q, %q) = %v, want %v", tt.base, tt.quote, tt.rate, err, tt.want)
				}
			})
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"EUR\", \"CHF\", \"0\") did not panic")
			}
		}()
		MustParseExchRate("EUR", "CHF", "0")
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote, rate, b, want string
		}{
			{"EUR", "CHF", "0.95", "EUR:10", "CHF:9.5"},
			{"EUR", "CHF", "0.95", "EUR:0", "CHF:0"},
			{"EUR", "CHF", "0.5", "EUR:0.00000001", "CHF:0"},
			{"EUR", "CHF", "1.123456789", "EUR:1", "CHF:1.12345678"},
			{"EUR", "CHF", "2", "EUR:1.00000001", "CHF:2.00000002"},
			{"KUDOS", "EUR", "0.01", "KUDOS:42.1337", "EUR:0.421337"},
			{"EUR", "EUR", "1", "EUR:99999999999.99999999", "EUR:99999999999.99999999"},
			{"EUR", "EUR", "1", "EUR:4503599627370496.99999999", "EUR:4503599627370496.99999999"},
			{"EUR", "CHF", "0.95", "EUR:100000000000", "CHF:95000000000"},
			{"EUR", "CHF", "0.0000000000000000001", "EUR:4503599627370496.99999999", "CHF:0.00045035"},
			// Truncated, not rounded, at the 8th digit
			{"EUR", "CHF", "0.100871090", "EUR:12345678901.12345678", "CHF:1245322087.5463253"},
			{"EUR", "CHF", "0.100894847", "EUR:12345678901.12345678", "CHF:1245615383.83997929"},
			{"EUR", "CHF", "0.100918604", "EUR:12345678901.12345678", "CHF:1245908680.13363328"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.base, tt.quote, tt.rate)
			b := MustParseWire(tt.b)
			got, err := r.Conv(b)
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", r, b, err)
				continue
			}
			if want := MustParseWire(tt.want); got != want {
				t.Errorf("%v.Conv(%v) = %q, want %q", r, b, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote, rate, b string
			want                 error
		}{
			"currency 1": {"EUR", "CHF", "0.95", "USD:1", ErrCurrencyMismatch},
			"currency 2": {"EUR", "CHF", "0.95", "CHF:1", ErrCurrencyMismatch},
			"range 1":    {"EUR", "CHF", "100000", "EUR:99999999999", ErrRange},
			"range 2":    {"EUR", "CHF", "2", "EUR:4503599627370496.99999999", ErrRange},
			"range 3":    {"EUR", "CHF", "9999999999999999999", "EUR:4503599627370496.99999999", ErrRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				r := MustParseExchRate(tt.base, tt.quote, tt.rate)
				b := MustParseWire(tt.b)
				_, err := r.Conv(b)
				if !errors.Is(err, tt.want) {
					t.Errorf("%v.Conv(%v) = %v, want %v", r, b, err, tt.want)
				}
			})
		}
	})
}

func TestExchangeRate_ConvExact(t *testing.T) {
	amounts := []string{
		"EUR:0.00000001",
		"EUR:0.99999999",
		"EUR:1",
		"EUR:12345678901.12345678",
		"EUR:98765432109.87654321",
		"EUR:1125899906842624.33333333",
		"EUR:4503599627370496.99999999",
	}
	rates := []string{
		"0.000000001",
		"0.100871090",
		"0.3333333333333333333",
		"0.95",
		"0.9999999999999999999",
		"1.123456789",
		"7.77",
	}
	ten := big.NewInt(10)
	for _, s := range amounts {
		for _, rate := range rates {
			b := MustParseWire(s)
			r := MustParseExchRate("EUR", "CHF", rate)
			d := r.Decimal()

			// Exact product in minor units, truncated
			want := new(big.Int).SetUint64(b.Whole())
			want.Mul(want, big.NewInt(FracBase))
			want.Add(want, big.NewInt(int64(b.Frac())))
			want.Mul(want, new(big.Int).SetUint64(d.Coef()))
			want.Quo(want, new(big.Int).Exp(ten, big.NewInt(int64(d.Scale())), nil))
			whole, frac := new(big.Int).QuoRem(want, big.NewInt(FracBase), new(big.Int))

			got, err := r.Conv(b)
			if whole.Cmp(new(big.Int).SetUint64(MaxValue)) > 0 {
				if !errors.Is(err, ErrRange) {
					t.Errorf("%v.Conv(%v) = %v, want %v", r, b, err, ErrRange)
				}
				continue
			}
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", r, b, err)
				continue
			}
			if got.Whole() != whole.Uint64() || uint64(got.Frac()) != frac.Uint64() {
				t.Errorf("%v.Conv(%v) = %v, want %v.%08v", r, b, got, whole, frac)
			}
		}
	}
}

func TestExchangeRate_Inv(t *testing.T) {
	tests := []struct {
		rate, want string
	}{
		{"0.8", "1.25"},
		{"2", "0.5"},
		{"0.01", "100"},
	}
	for _, tt := range tests {
		r := MustParseExchRate("EUR", "CHF", tt.rate)
		got, err := r.Inv()
		if err != nil {
			t.Errorf("%v.Inv() failed: %v", r, err)
			continue
		}
		if got.Base() != r.Quote() || got.Quote() != r.Base() {
			t.Errorf("%v.Inv() = %v, want currencies swapped", r, got)
		}
		if want := decimal.MustParse(tt.want); got.Decimal().Cmp(want) != 0 {
			t.Errorf("%v.Inv() = %v, want %v", r, got.Decimal(), want)
		}
	}
}

func TestExchangeRate_SameCurr(t *testing.T) {
	r := MustParseExchRate("EUR", "CHF", "0.95")
	q := MustParseExchRate("EUR", "CHF", "0.96")
	p := MustParseExchRate("CHF", "EUR", "1.05")
	if !r.SameCurr(q) {
		t.Errorf("%v.SameCurr(%v) = false, want true", r, q)
	}
	if r.SameCurr(p) {
		t.Errorf("%v.SameCurr(%v) = true, want false", r, p)
	}
}
