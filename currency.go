package amount

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// MaxCurrLen is the maximum number of characters in a currency code.
const MaxCurrLen = 12

// ErrInvalidCurrency is returned when a currency code is empty, longer than
// [MaxCurrLen] characters, or contains a character outside [A-Za-z0-9_*-].
var ErrInvalidCurrency = errors.New("invalid currency")

// Currency type represents the currency of an amount as exchanged with
// protocol peers, for example "EUR", "KUDOS" or "TESTKUDOS".
// The zero value is [XXX], which indicates an unknown currency.
//
// Unlike ISO 4217 codes, protocol currency codes are free-form: any string of
// 1 to 12 letters, digits, '-', '_' or '*' is accepted.
// Codes are case-sensitive and stored exactly as given.
//
// A Currency can only be obtained from [ParseCurr], so every Currency value is
// valid. Currency is safe for concurrent use by multiple goroutines.
type Currency struct {
	code string // empty for XXX
}

// XXX is the zero Currency, denoting an unknown currency.
// ParseCurr("XXX") returns XXX.
var XXX = Currency{}

const xxxCode = "XXX"

// ParseCurr converts a string to currency.
// The input string must be 1 to 12 characters long and may only contain
// ASCII letters, digits and the characters '-', '_' and '*':
//
//	EUR
//	KUDOS
//	test_coin-2
//
// ParseCurr returns an error if the string does not represent a valid currency code.
func ParseCurr(curr string) (Currency, error) {
	if len(curr) == 0 || len(curr) > MaxCurrLen {
		return XXX, fmt.Errorf("%w: length of %q is %v, want 1 to %v", ErrInvalidCurrency, curr, len(curr), MaxCurrLen)
	}
	for i := 0; i < len(curr); i++ {
		if !isCurrChar(curr[i]) {
			return XXX, fmt.Errorf("%w: %q contains %q at position %v", ErrInvalidCurrency, curr, curr[i], i)
		}
	}
	if curr == xxxCode {
		return XXX, nil
	}
	return Currency{code: curr}, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

func isCurrChar(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return true
	case b == '-', b == '_', b == '*':
		return true
	}
	return false
}

// Code returns the currency code exactly as it was parsed.
// This method always returns a valid code.
func (c Currency) Code() string {
	if c.code == "" {
		return xxxCode
	}
	return c.code
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	s, err := unquoteJSON(text)
	if err == nil {
		*c, err = ParseCurr(s)
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	return quoteJSON(nil, c.Code()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (c Currency) AppendText(text []byte) ([]byte, error) {
	return append(text, c.Code()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The binary form is identical to the text form.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (c *Currency) UnmarshalBinary(data []byte) error {
	return c.UnmarshalText(data)
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (c Currency) AppendBinary(data []byte) ([]byte, error) {
	return c.AppendText(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (c Currency) MarshalBinary() ([]byte, error) {
	return c.MarshalText()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (c *Currency) UnmarshalBSONValue(typ byte, data []byte) error {
	var err error
	switch typ {
	case bsonString:
		var s string
		s, err = parseBSONString(data)
		if err == nil {
			*c, err = ParseCurr(s)
		}
	case bsonNull:
		// do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, XXX, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (c Currency) MarshalBSONValue() (typ byte, data []byte, err error) {
	return bsonString, appendBSONString(nil, c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", XXX, NullCurrency{}, XXX)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | EUR     | Currency        |
//	| %q         | "EUR"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()

	// Opening and closing quotes
	quotes := 0
	if verb == 'q' || verb == 'Q' {
		quotes = 2
	}

	buf := make([]byte, 0, len(curr)+quotes)
	if quotes > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, curr...)
	if quotes > 0 {
		buf = append(buf, '"')
	}

	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		writePadded(state, buf)
	default:
		writeBadVerb(state, verb, "amount.Currency", buf)
	}
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Currency.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullCurrency) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == bsonNull {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Currency.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullCurrency) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return bsonNull, nil, nil
	}
	return n.Currency.MarshalBSONValue()
}
