package ulid

// Crockford base32: 5 bits per character, alphabet without I, L, O, U to
// avoid visual ambiguity. Encoding is upper-case canonical, decoding is
// case-insensitive.
//
// The canonical string encodes the two fields independently, like the wire
// layout: the 48-bit timestamp left-aligned over 10 characters (the last
// character carries 2 zero pad bits) followed by the 80-bit randomness over
// exactly 16 characters.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	// EncodedLen is the canonical string length of a ULID.
	EncodedLen = 26
	// TimestampEncodedLen is the timestamp portion of the canonical string.
	TimestampEncodedLen = 10
	// RandomnessEncodedLen is the randomness portion of the canonical string.
	RandomnessEncodedLen = 16
)

// crockfordRev maps a character to its 5-bit value, 0xFF for characters
// outside the alphabet. Lower-case letters map like their upper-case forms.
var crockfordRev = func() (rev [256]byte) {
	for i := range rev {
		rev[i] = 0xFF
	}
	for i := 0; i < len(crockford); i++ {
		c := crockford[i]
		rev[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			rev[c+'a'-'A'] = byte(i)
		}
	}
	return rev
}()

// appendTimestampPart encodes ts over 10 characters, left-aligned in the
// 50-bit character space.
func appendTimestampPart(dst []byte, ts uint64) []byte {
	v := ts << 2
	var part [TimestampEncodedLen]byte
	for i := TimestampEncodedLen - 1; i >= 0; i-- {
		part[i] = crockford[v&0x1F]
		v >>= 5
	}
	return append(dst, part[:]...)
}

// appendRandomnessPart encodes the 80-bit randomness over 16 characters.
func appendRandomnessPart(dst []byte, r Uint128) []byte {
	var part [RandomnessEncodedLen]byte
	for i := RandomnessEncodedLen - 1; i >= 0; i-- {
		part[i] = crockford[r.Lo&0x1F]
		r = r.Rsh(5)
	}
	return append(dst, part[:]...)
}

// decodeTimestampPart parses the 10-character timestamp portion. The 2 pad
// bits are discarded.
func decodeTimestampPart(s string) (uint64, error) {
	if len(s) != TimestampEncodedLen {
		return 0, decodeErr("string", s, "timestamp part must be 10 characters")
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d := crockfordRev[s[i]]
		if d == 0xFF {
			return 0, decodeErr("string", s, "character outside Crockford alphabet")
		}
		v = v<<5 | uint64(d)
	}
	return v >> 2, nil
}

// decodeRandomnessPart parses the 16-character randomness portion.
func decodeRandomnessPart(s string) (Uint128, error) {
	if len(s) != RandomnessEncodedLen {
		return Uint128{}, decodeErr("string", s, "randomness part must be 16 characters")
	}
	var v Uint128
	for i := 0; i < len(s); i++ {
		d := crockfordRev[s[i]]
		if d == 0xFF {
			return Uint128{}, decodeErr("string", s, "character outside Crockford alphabet")
		}
		v = v.Lsh(5).Add64(uint64(d))
	}
	return v, nil
}
