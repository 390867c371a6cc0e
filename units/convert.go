package units

import "math/big"

// ToBaseRatio returns the exact ratio (numerator, denominator) such that
// magnitude_in_base = magnitude_in_u * numerator / denominator. Both
// multiplier sign conventions collapse to this single rational factor.
func (u Unit) ToBaseRatio() *big.Rat {
	if u.Multiplier >= 0 {
		return big.NewRat(int64(u.Multiplier), 1)
	}
	return big.NewRat(1, int64(-u.Multiplier))
}

// FromBaseRatio is the inverse of ToBaseRatio: magnitude_in_u =
// magnitude_in_base * numerator / denominator.
func (u Unit) FromBaseRatio() *big.Rat {
	r := u.ToBaseRatio()
	return new(big.Rat).Inv(r)
}
