package ulid

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// SLIDEncodedLen is the canonical string length of a SLID: 16 hex
// characters for 64 bits.
const SLIDEncodedLen = 16

// Bytes returns the raw 8-byte representation.
func (id SLID) Bytes() []byte { b := make([]byte, 8); copy(b, id[:]); return b }

// SLIDFromBytes reinterprets an 8-byte big-endian sequence as a SLID.
func SLIDFromBytes(b []byte) (SLID, error) {
	if len(b) != 8 {
		return SLID{}, decodeErr("bytes", fmt.Sprintf("% x", b), "length must be 8")
	}
	var id SLID
	copy(id[:], b)
	return id, nil
}

// Uint64 returns the packed value as an unsigned 64-bit integer.
func (id SLID) Uint64() uint64 { return binary.BigEndian.Uint64(id[:]) }

// SLIDFromUint64 reinterprets a 64-bit unsigned integer as a SLID. Total:
// the whole 64-bit space is representable.
func SLIDFromUint64(v uint64) SLID {
	var id SLID
	binary.BigEndian.PutUint64(id[:], v)
	return id
}

// String returns the canonical 16-character hexadecimal form, lower-case.
func (id SLID) String() string {
	return fmt.Sprintf("%016x", id.Uint64())
}

// ParseSLID decodes a canonical 16-character hex string,
// case-insensitively.
func ParseSLID(s string) (SLID, error) {
	if len(s) != SLIDEncodedLen {
		return SLID{}, decodeErr("string", s, "length must be 16")
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return SLID{}, decodeErr("string", s, "non-hex character")
	}
	return SLIDFromUint64(v), nil
}

// Hex returns "0x" followed by 16 hex digits.
func (id SLID) Hex() string { return fmt.Sprintf("0x%016x", id.Uint64()) }

// Oct returns "0o" followed by 22 octal digits.
func (id SLID) Oct() string { return "0o" + padLeft(strconv.FormatUint(id.Uint64(), 8), 22) }

// Bin returns "0b" followed by 64 binary digits.
func (id SLID) Bin() string { return "0b" + padLeft(strconv.FormatUint(id.Uint64(), 2), 64) }

// SLIDFromHex parses a hexadecimal view, with or without the "0x" prefix.
func SLIDFromHex(s string) (SLID, error) { return slidFromBase(s, "0x", 16, "hex") }

// SLIDFromOct parses an octal view, with or without the "0o" prefix.
func SLIDFromOct(s string) (SLID, error) { return slidFromBase(s, "0o", 8, "oct") }

// SLIDFromBin parses a binary view, with or without the "0b" prefix.
func SLIDFromBin(s string) (SLID, error) { return slidFromBase(s, "0b", 2, "bin") }

func slidFromBase(s, prefix string, base int, repr string) (SLID, error) {
	digits := s
	if len(digits) >= 2 && strings.EqualFold(digits[:2], prefix) {
		digits = digits[2:]
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return SLID{}, decodeErr(repr, s, fmt.Sprintf("invalid base-%d integer", base))
	}
	return SLIDFromUint64(v), nil
}

// ParseAnySLID decodes a compact identifier whose representation is not
// known ahead of time, like ParseAny does for the full format. 16
// characters select the canonical hex form.
func ParseAnySLID(s string) (SLID, error) {
	switch {
	case hasPrefixFold(s, "0x"):
		return SLIDFromHex(s)
	case hasPrefixFold(s, "0o"):
		return SLIDFromOct(s)
	case hasPrefixFold(s, "0b"):
		return SLIDFromBin(s)
	case len(s) == SLIDEncodedLen:
		return ParseSLID(s)
	case isDigits(s):
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return SLID{}, decodeErr("int", s, "value outside unsigned 64-bit range")
		}
		return SLIDFromUint64(v), nil
	}
	return SLID{}, decodeErr("any", s, "unrecognized representation")
}
