/*
Package amount implements fixed-point monetary amounts as exchanged with
payment protocol peers such as exchanges, merchants and banks.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Free-form protocol currency codes, such as EUR, KUDOS or TESTKUDOS
  - Exact parsing and formatting of the canonical wire form, "EUR:1.5"
  - Addition, subtraction, multiplication and comparison with
    deterministic overflow and underflow detection
  - Conversion of amounts between currencies using exchange rates

# Representation

An Amount consists of a Currency, a whole part and a fraction.
The whole part is an unsigned integer in the range [0, 2^52].
The fraction counts hundred-millionths of one whole unit and is always
normalized to the range [0, 99999999].
No binary floating-point arithmetic is involved in any operation.

# Wire Form

The canonical wire form is defined by the following grammar:

	amount-wire     := currency ":" number
	number          := integer [ "." fraction-digits ]
	currency        := 1*12( ALPHA / DIGIT / "-" / "_" / "*" )
	integer         := 1*DIGIT                 ; numeric value <= 2^52
	fraction-digits := 1*8DIGIT                ; scaled to hundred-millionths

[Amount.Wire] emits the fraction with the fewest digits that represent it
exactly, so independent implementations produce identical strings.
Amounts are embedded into JSON documents as strings in the wire form.

# Errors

Errors may occur during the parsing of Amount and Currency values, as well
as during arithmetic operations and conversions.
Such errors are returned to the caller and wrap one of the sentinel errors
[ErrParse], [ErrRange], [ErrInvalidCurrency], [ErrOverflow], [ErrUnderflow]
and [ErrCurrencyMismatch], which can be matched with [errors.Is].
Only the Must* constructors panic.
*/
package amount
