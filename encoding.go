package amount

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// BSON element types, see https://bsonspec.org/spec.html
const (
	bsonString byte = 2
	bsonNull   byte = 10
)

var (
	errBSONString = errors.New("invalid BSON string")
	errJSONString = errors.New("invalid JSON string")
)

// parseBSONString decodes a BSON string value.
// The byte order of the length prefix is little-endian.
func parseBSONString(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: invalid data length %v", errBSONString, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return "", fmt.Errorf("%w: invalid string length %v", errBSONString, l)
	}
	if data[l+4-1] != 0 {
		return "", fmt.Errorf("%w: invalid null terminator %v", errBSONString, data[l+4-1])
	}
	return string(data[4 : l+4-1]), nil
}

// appendBSONString appends s as a length-prefixed, null-terminated BSON string.
func appendBSONString(dst []byte, s string) []byte {
	l := len(s) + 1
	dst = append(dst, byte(l), byte(l>>8), byte(l>>16), byte(l>>24))
	dst = append(dst, s...)
	return append(dst, 0)
}

// quoteJSON appends s as a JSON string.
// Currency codes and wire amounts never contain characters that need escaping.
func quoteJSON(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = append(dst, s...)
	return append(dst, '"')
}

// unquoteJSON decodes a JSON string.
// Strings with escape sequences are decoded by package json.
func unquoteJSON(text []byte) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("%w: %s", errJSONString, text)
	}
	if bytes.IndexByte(text, '\\') < 0 {
		return string(text[1 : len(text)-1]), nil
	}
	var s string
	if err := json.Unmarshal(text, &s); err != nil {
		return "", fmt.Errorf("%w: %w", errJSONString, err)
	}
	return s, nil
}

// writePadded writes buf padded with spaces to the width of the state.
// The '-' flag moves the padding to the right.
//
//nolint:errcheck
func writePadded(state fmt.State, buf []byte) {
	w, ok := state.Width()
	if !ok || w <= len(buf) {
		state.Write(buf)
		return
	}
	pad := make([]byte, w-len(buf))
	for i := range pad {
		pad[i] = ' '
	}
	if state.Flag('-') {
		state.Write(buf)
		state.Write(pad)
		return
	}
	state.Write(pad)
	state.Write(buf)
}

// writeBadVerb reports an unsupported verb the way package fmt does.
//
//nolint:errcheck
func writeBadVerb(state fmt.State, verb rune, typ string, buf []byte) {
	state.Write([]byte("%!"))
	state.Write([]byte(string(verb)))
	state.Write([]byte("(" + typ + "="))
	state.Write(buf)
	state.Write([]byte(")"))
}
