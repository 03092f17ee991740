package ulid

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/uuid"
	oklog "github.com/oklog/ulid/v2"
)

func asDecodeError(err error, target **DecodeError) bool { return errors.As(err, target) }

func mustFromParts(t *testing.T, ts uint64, rand Uint128) ULID {
	t.Helper()
	id, err := FromParts(ts, rand)
	if err != nil {
		t.Fatalf("from parts: %v", err)
	}
	return id
}

func TestBytesRoundTrip(t *testing.T) {
	id := mustFromParts(t, 0x016F4D2A1B2C, U128(0x3D4E, 0x0102030405060708))
	back, err := FromBytes(id.Bytes())
	if err != nil {
		t.Fatalf("from bytes: %v", err)
	}
	if back != id {
		t.Fatalf("round trip lost bits")
	}
	if _, err := FromBytes(id.Bytes()[:15]); err == nil {
		t.Fatalf("short input must fail")
	}
	if _, err := FromBytes(append(id.Bytes(), 0)); err == nil {
		t.Fatalf("long input must fail")
	}
}

func TestIntRoundTrip(t *testing.T) {
	id := mustFromParts(t, 0x016F4D2A1B2C, U128(0x3D4E, 0xDEADBEEF))
	if got := FromUint128(id.Int()); got != id {
		t.Fatalf("uint128 round trip")
	}
	back, err := FromBig(id.Big())
	if err != nil || back != id {
		t.Fatalf("big round trip: %v", err)
	}
	if _, err := FromBig(big.NewInt(-1)); err == nil {
		t.Fatalf("negative integer must fail")
	}
	over := new(big.Int).Lsh(big.NewInt(1), 128)
	if _, err := FromBig(over); err == nil {
		t.Fatalf("129-bit integer must fail")
	}
}

func TestCanonicalString(t *testing.T) {
	id := mustFromParts(t, 1, Uint128{})
	if got := id.String(); got != "00000000040000000000000000" {
		t.Fatalf("canonical form of ts=1: %q", got)
	}
	if got := MaxULID.String(); got != "ZZZZZZZZZW"+strings.Repeat("Z", 16) {
		t.Fatalf("canonical form of max: %q", got)
	}

	back, err := Parse(id.String())
	if err != nil || back != id {
		t.Fatalf("parse round trip: %v", err)
	}
	lower, err := Parse(strings.ToLower(id.String()))
	if err != nil || lower != id {
		t.Fatalf("decode must be case-insensitive: %v", err)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"0000000004000000000000000",    // 25 chars
		"000000000400000000000000000",  // 27 chars
		"0000000004000000000000000I",   // excluded letter
		"0000000004000000000000000L",   //
		"0000000004000000000000000O",   //
		"0000000004000000000000000U",   //
		"00000000040000000000000出00",   // multi-byte rune
	}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) must fail", in)
		} else {
			var de *DecodeError
			if !asDecodeError(err, &de) {
				t.Fatalf("Parse(%q): want *DecodeError, got %T", in, err)
			}
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("Parse(%q): error should match ErrDecode", in)
			}
		}
	}
}

// The packed value 0x0000016F4D2A1B2C3D4E must survive every representation
// untouched and encode to a 26-character string inside the Crockford
// alphabet.
func TestKnownValueAllRepresentations(t *testing.T) {
	v, _ := new(big.Int).SetString("0000016F4D2A1B2C3D4E", 16)
	id, err := FromBig(v)
	if err != nil {
		t.Fatalf("from big: %v", err)
	}

	s := id.String()
	if len(s) != EncodedLen {
		t.Fatalf("len(%q) = %d", s, len(s))
	}
	if strings.ContainsAny(s, "ILOUilou") {
		t.Fatalf("string %q uses excluded characters", s)
	}

	back, err := Parse(s)
	if err != nil || back != id {
		t.Fatalf("string round trip: %v", err)
	}
	if got, err := FromBytes(id.Bytes()); err != nil || got != id {
		t.Fatalf("bytes round trip: %v", err)
	}
	if got, err := FromBig(id.Big()); err != nil || got != id {
		t.Fatalf("integer round trip: %v", err)
	}
	for _, round := range []func() (ULID, error){
		func() (ULID, error) { return FromHex(id.Hex()) },
		func() (ULID, error) { return FromOct(id.Oct()) },
		func() (ULID, error) { return FromBin(id.Bin()) },
	} {
		got, err := round()
		if err != nil || got != id {
			t.Fatalf("textual view round trip: got %v err %v", got, err)
		}
	}
}

func TestTextualViews(t *testing.T) {
	id := mustFromParts(t, 0, U128From64(255))
	if got := id.Hex(); got != "0x000000000000000000000000000000ff" {
		t.Fatalf("hex = %q", got)
	}
	if got := id.Oct(); len(got) != 2+43 || !strings.HasPrefix(got, "0o") {
		t.Fatalf("oct = %q", got)
	}
	if got := id.Bin(); len(got) != 2+128 || !strings.HasSuffix(got, "11111111") {
		t.Fatalf("bin = %q", got)
	}
	if _, err := FromHex("0xZZ"); err == nil {
		t.Fatalf("invalid hex digit must fail")
	}
	if _, err := FromOct("0o99"); err == nil {
		t.Fatalf("invalid octal digit must fail")
	}
	if _, err := FromBin("0b012"); err == nil {
		t.Fatalf("invalid binary digit must fail")
	}
}

func TestSplitBuild(t *testing.T) {
	id := mustFromParts(t, 0x016F4D2A1B2C, U128(0x1234, 0x56789ABCDEF01234))
	tsPart, randPart, err := Split(id.String())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(tsPart) != TimestampEncodedLen || len(randPart) != RandomnessEncodedLen {
		t.Fatalf("split lengths: %d/%d", len(tsPart), len(randPart))
	}
	back, err := Build(tsPart, randPart)
	if err != nil || back != id {
		t.Fatalf("build: %v", err)
	}
	if _, _, err := Split("too-short"); err == nil {
		t.Fatalf("split must validate length")
	}
}

func TestParseAnyDispatch(t *testing.T) {
	id := mustFromParts(t, 0x016F4D2A1B2C, U128(0x3D4E, 0xCAFEBABE))
	for _, in := range []string{id.String(), id.Hex(), id.Oct(), id.Bin(), id.Big().String()} {
		got, err := ParseAny(in)
		if err != nil {
			t.Fatalf("ParseAny(%q): %v", in, err)
		}
		if got != id {
			t.Fatalf("ParseAny(%q) = %v, want %v", in, got, id)
		}
	}
	if _, err := ParseAny("not an identifier"); err == nil {
		t.Fatalf("unrecognized shape must fail")
	}
}

func TestUUIDBridge(t *testing.T) {
	id := mustFromParts(t, 0x016F4D2A1B2C, U128(0x3D4E, 0x1122334455667788))
	u := id.UUID()
	if FromUUID(u) != id {
		t.Fatalf("uuid round trip")
	}
	parsed, err := uuid.Parse(u.String())
	if err != nil || FromUUID(parsed) != id {
		t.Fatalf("textual uuid round trip: %v", err)
	}
}

// The wire layout matches the ULID ecosystem: oklog/ulid reads our bytes as
// the same timestamp and our byte order agrees with its comparisons.
func TestByteLayoutMatchesOklog(t *testing.T) {
	id := mustFromParts(t, 0x016F4D2A1B2C, U128(0x3D4E, 0x99AABBCCDDEEFF00))

	ok := oklog.ULID(id)
	if ok.Time() != id.Timestamp() {
		t.Fatalf("oklog reads timestamp %d, ours is %d", ok.Time(), id.Timestamp())
	}

	ref, err := oklog.New(0x016F4D2A1B2D, nil)
	if err != nil {
		t.Fatalf("oklog new: %v", err)
	}
	ours, err := FromBytes(ref[:])
	if err != nil {
		t.Fatalf("from oklog bytes: %v", err)
	}
	if ours.Timestamp() != ref.Time() {
		t.Fatalf("timestamp disagreement: %d vs %d", ours.Timestamp(), ref.Time())
	}
	if c := bytes.Compare(id.Bytes(), ours.Bytes()); c != id.Compare(ours) {
		t.Fatalf("Compare must equal byte-wise comparison")
	}
}
