package ulid

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// ErrDecode matches any *DecodeError via errors.Is.
var ErrDecode = errors.New("ulid: decode failed")

// DecodeError reports malformed input to one of the From* or Parse
// conversions: wrong length, a character outside the representation's
// alphabet, or an out-of-range value.
type DecodeError struct {
	Repr   string // source representation, e.g. "string", "hex", "bytes"
	Input  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ulid: decode %s %q: %s", e.Repr, e.Input, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

func decodeErr(repr, input, reason string) error {
	return &DecodeError{Repr: repr, Input: input, Reason: reason}
}

// Bytes returns the raw 16-byte representation.
func (id ULID) Bytes() []byte { b := make([]byte, 16); copy(b, id[:]); return b }

// FromBytes reinterprets a 16-byte big-endian sequence as a ULID.
func FromBytes(b []byte) (ULID, error) {
	if len(b) != 16 {
		return ULID{}, decodeErr("bytes", fmt.Sprintf("% x", b), "length must be 16")
	}
	var id ULID
	copy(id[:], b)
	return id, nil
}

// Int returns the packed value as an unsigned 128-bit integer.
func (id ULID) Int() Uint128 {
	return id.Randomness().Add(U128From64(id.Timestamp()).Lsh(RandomnessBits))
}

// FromUint128 reinterprets a 128-bit unsigned integer as a ULID. Total: the
// whole 128-bit space is representable.
func FromUint128(v Uint128) ULID {
	return pack(v.Rsh(RandomnessBits).Lo, v.Mask(RandomnessBits))
}

// Big returns the packed value as a big.Int.
func (id ULID) Big() *big.Int { return id.Int().Big() }

// FromBig converts an arbitrary-precision integer to a ULID. It fails when
// the value is negative or exceeds 128 bits.
func FromBig(b *big.Int) (ULID, error) {
	v, ok := U128FromBig(b)
	if !ok {
		return ULID{}, decodeErr("int", b.String(), "value outside unsigned 128-bit range")
	}
	return FromUint128(v), nil
}

// String returns the canonical 26-character Crockford base32 form,
// upper-case.
func (id ULID) String() string {
	buf := make([]byte, 0, EncodedLen)
	buf = appendTimestampPart(buf, id.Timestamp())
	buf = appendRandomnessPart(buf, id.Randomness())
	return string(buf)
}

// Parse decodes a canonical 26-character string, case-insensitively.
func Parse(s string) (ULID, error) {
	if len(s) != EncodedLen {
		return ULID{}, decodeErr("string", s, "length must be 26")
	}
	ts, err := decodeTimestampPart(s[:TimestampEncodedLen])
	if err != nil {
		return ULID{}, err
	}
	rand, err := decodeRandomnessPart(s[TimestampEncodedLen:])
	if err != nil {
		return ULID{}, err
	}
	return pack(ts, rand), nil
}

// Split slices a canonical string into its timestamp and randomness
// portions without decoding them.
func Split(s string) (ts, rand string, err error) {
	if len(s) != EncodedLen {
		return "", "", decodeErr("string", s, "length must be 26")
	}
	return s[:TimestampEncodedLen], s[TimestampEncodedLen:], nil
}

// Build decodes separately transported timestamp and randomness portions
// into one identifier.
func Build(ts, rand string) (ULID, error) {
	t, err := decodeTimestampPart(ts)
	if err != nil {
		return ULID{}, err
	}
	r, err := decodeRandomnessPart(rand)
	if err != nil {
		return ULID{}, err
	}
	return pack(t, r), nil
}

// Textual views of the integer form. They round-trip through the integer
// representation and are fixed-width with the usual base prefixes.

// Hex returns "0x" followed by 32 hex digits.
func (id ULID) Hex() string { return "0x" + padLeft(id.Big().Text(16), 32) }

// Oct returns "0o" followed by 43 octal digits.
func (id ULID) Oct() string { return "0o" + padLeft(id.Big().Text(8), 43) }

// Bin returns "0b" followed by 128 binary digits.
func (id ULID) Bin() string { return "0b" + padLeft(id.Big().Text(2), 128) }

// FromHex parses a hexadecimal view, with or without the "0x" prefix.
func FromHex(s string) (ULID, error) { return fromBase(s, "0x", 16, "hex") }

// FromOct parses an octal view, with or without the "0o" prefix.
func FromOct(s string) (ULID, error) { return fromBase(s, "0o", 8, "oct") }

// FromBin parses a binary view, with or without the "0b" prefix.
func FromBin(s string) (ULID, error) { return fromBase(s, "0b", 2, "bin") }

func fromBase(s, prefix string, base int, repr string) (ULID, error) {
	digits := s
	if len(digits) >= 2 && (digits[:2] == prefix || digits[:2] == strings.ToUpper(prefix)) {
		digits = digits[2:]
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok || v.Sign() < 0 {
		return ULID{}, decodeErr(repr, s, fmt.Sprintf("invalid base-%d integer", base))
	}
	return FromBig(v)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// ParseAny decodes an identifier whose representation is not known ahead of
// time, dispatching on the shape of the input: a "0x"/"0o"/"0b" prefix
// selects the matching textual view, 26 characters the canonical string,
// and plain digits the decimal integer form.
func ParseAny(s string) (ULID, error) {
	switch {
	case hasPrefixFold(s, "0x"):
		return FromHex(s)
	case hasPrefixFold(s, "0o"):
		return FromOct(s)
	case hasPrefixFold(s, "0b"):
		return FromBin(s)
	case len(s) == EncodedLen:
		return Parse(s)
	case isDigits(s):
		v, _ := new(big.Int).SetString(s, 10)
		return FromBig(v)
	}
	return ULID{}, decodeErr("any", s, "unrecognized representation")
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// UUID returns the identifier reinterpreted as an RFC 4122 UUID. Both are
// 16 bytes; the textual forms bridge to systems that only speak UUID.
func (id ULID) UUID() uuid.UUID { return uuid.UUID(id) }

// FromUUID reinterprets a UUID's bytes as a ULID.
func FromUUID(u uuid.UUID) ULID { return ULID(u) }
