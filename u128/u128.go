// Package u128 is the boundary codec for unsigned 128-bit amounts. Amounts
// cross text boundaries as base-10 strings and binary boundaries as
// little-endian Uint128 limbs; either way they round-trip losslessly and
// floats never appear.
package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
)

// Parse converts a base-10 string into a u128-bounded big.Int. Signs,
// whitespace and any non-digit reject the whole input, so a value that
// parses is exactly the value that was sent.
func Parse(s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.New("empty u128 decimal")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid u128 decimal: %q", s)
		}
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid u128 decimal: %q", s)
	}
	if i.BitLen() > 128 {
		return nil, fmt.Errorf("value overflows Uint128: %q", s)
	}
	return i, nil
}

// FromBig packs a non-negative big.Int into a binary Uint128.
func FromBig(i *big.Int) (binary.Uint128, error) {
	if i == nil || i.Sign() < 0 {
		return binary.Uint128{}, errors.New("value cannot be negative")
	}
	if i.BitLen() > 128 {
		return binary.Uint128{}, errors.New("value overflows Uint128")
	}
	v := new(big.Int).Set(i)
	u := binary.NewUint128LittleEndian()
	u.Lo = v.Uint64()
	u.Hi = v.Rsh(v, 64).Uint64()
	return *u, nil
}

// ToBig unpacks a binary Uint128 into a big.Int.
func ToBig(v binary.Uint128) *big.Int {
	return v.BigInt()
}
