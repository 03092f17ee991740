package ulid

import (
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer. It backs the packed value of the
// full format and the wide counters (72 and 80 bits). The zero value is 0.
type Uint128 struct {
	Hi, Lo uint64
}

// U128 builds a Uint128 from its high and low halves.
func U128(hi, lo uint64) Uint128 { return Uint128{Hi: hi, Lo: lo} }

// U128From64 widens v to 128 bits.
func U128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// MaxUint128 is 2^128 - 1.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// Add returns u + v, wrapping at 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Add64 returns u + n, wrapping at 2^128.
func (u Uint128) Add64(n uint64) Uint128 { return u.Add(Uint128{Lo: n}) }

// Sub returns u - v, wrapping at 2^128.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub64 returns u - n, wrapping at 2^128.
func (u Uint128) Sub64(n uint64) Uint128 { return u.Sub(Uint128{Lo: n}) }

// Lsh returns u << n. Shifts of 128 or more yield 0.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh returns u >> n. Shifts of 128 or more yield 0.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Mask keeps the low width bits of u and clears the rest. This is the
// mod-2^width reduction counters wrap with.
func (u Uint128) Mask(width uint) Uint128 {
	switch {
	case width >= 128:
		return u
	case width >= 64:
		return Uint128{Hi: u.Hi & (1<<(width-64) - 1), Lo: u.Lo}
	default:
		return Uint128{Lo: u.Lo & (1<<width - 1)}
	}
}

// Cmp returns -1, 0 or 1 comparing u and v as unsigned integers.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// U128FromBig converts b to a Uint128. ok is false when b is negative or
// does not fit in 128 bits.
func U128FromBig(b *big.Int) (u Uint128, ok bool) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, false
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, true
}

// String returns the decimal representation of u.
func (u Uint128) String() string { return u.Big().String() }
