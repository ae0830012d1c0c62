package shamir

import "github.com/mrz1836/shamir32/internal/gf32"

// RecoverSecret reconstructs only the secret bytes from exactly
// threshold shards. It performs the same validation as Recover but
// calls LagrangeConstant per polynomial index instead of reconstructing
// full polynomials. Both are linear in the number of chunks; per chunk,
// RecoverSecret costs O(threshold^2) field operations where Recover's
// full interpolation costs O(threshold^3).
//
// RecoverSecret cannot tell the difference between a correct shard set
// and a wrong one if the tampered fields happen to agree: it will
// silently return a wrong secret rather than an error. Integrity is
// the caller's responsibility.
func RecoverSecret(shards []Shard) ([]byte, error) {
	threshold, ysLen, secretLen, err := validateShards(shards)
	if err != nil {
		return nil, err
	}

	constants := make([]gf32.Elem, ysLen)
	for i := 0; i < ysLen; i++ {
		points := make([]Point, len(shards))
		for j, s := range shards {
			points[j] = Point{X: s.x, Y: s.ys[i]}
		}
		c, err := LagrangeConstant(int(threshold)-1, points)
		if err != nil {
			return nil, err
		}
		constants[i] = c
	}

	return assembleSecret(constants, secretLen), nil
}
