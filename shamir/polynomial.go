package shamir

import (
	"io"

	"github.com/mrz1836/shamir32/internal/gf32"
)

// Polynomial is a sequence of coefficients (c0, c1, ..., ck) over
// GF(2^32), interpreted as p(x) = sum ci*x^i. c0 is the constant term;
// the degree is len(coeffs)-1.
type Polynomial struct {
	coeffs []gf32.Elem
}

// Point is a single (x, p(x)) evaluation used for interpolation.
type Point struct {
	X gf32.Elem
	Y gf32.Elem
}

// NewRandomPolynomial returns a polynomial of the given degree with
// every coefficient sampled independently and uniformly from r, which
// must be a cryptographically secure source.
func NewRandomPolynomial(degree int, r io.Reader) (Polynomial, error) {
	coeffs := make([]gf32.Elem, degree+1)
	for i := range coeffs {
		e, err := gf32.Random(r)
		if err != nil {
			return Polynomial{}, err
		}
		coeffs[i] = e
	}
	return Polynomial{coeffs: coeffs}, nil
}

// Degree returns the polynomial's degree.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Constant returns the polynomial's constant term, c0.
func (p Polynomial) Constant() gf32.Elem { return p.coeffs[0] }

// SetConstant overwrites the constant term, leaving every other
// coefficient untouched. Used by Dealer to bind a secret chunk to an
// otherwise-random polynomial.
func (p *Polynomial) SetConstant(v gf32.Elem) { p.coeffs[0] = v }

// Evaluate computes p(x) via Horner's method.
func (p Polynomial) Evaluate(x gf32.Elem) gf32.Elem {
	var result gf32.Elem
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = gf32.Add(gf32.Mul(result, x), p.coeffs[i])
	}
	return result
}

// Equal reports whether p and other have identical coefficient
// vectors.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c != other.coeffs[i] {
			return false
		}
	}
	return true
}

// Lagrange reconstructs the full polynomial of the stated degree from
// exactly degree+1 points with pairwise-distinct x-coordinates. The
// result does not depend on the order of points.
func Lagrange(degree int, points []Point) (Polynomial, error) {
	if len(points) != degree+1 {
		return Polynomial{}, ErrPointCount
	}
	if err := checkDistinctAbscissas(points); err != nil {
		return Polynomial{}, err
	}

	n := len(points)
	result := make([]gf32.Elem, n)

	for i := 0; i < n; i++ {
		// basis numerator polynomial: product over j != i of (x - x_j)
		basis := Polynomial{coeffs: []gf32.Elem{1}}
		denom := gf32.Elem(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			xi, xj := points[i].X, points[j].X
			basis = mulLinear(basis, xj)
			denom = gf32.Mul(denom, gf32.Sub(xi, xj))
		}
		scalar := gf32.Mul(points[i].Y, gf32.Inverse(denom))
		for k, c := range basis.coeffs {
			result[k] = gf32.Add(result[k], gf32.Mul(scalar, c))
		}
	}

	return Polynomial{coeffs: result}, nil
}

// LagrangeConstant reconstructs only p(0) from exactly degree+1
// points, skipping construction of the non-constant terms. It is
// asymptotically cheaper than Lagrange because it works with scalars
// instead of polynomials.
func LagrangeConstant(degree int, points []Point) (gf32.Elem, error) {
	if len(points) != degree+1 {
		return gf32.Zero, ErrPointCount
	}
	if err := checkDistinctAbscissas(points); err != nil {
		return gf32.Zero, err
	}

	n := len(points)
	var secret gf32.Elem

	for i := 0; i < n; i++ {
		num := gf32.Elem(1)
		den := gf32.Elem(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			num = gf32.Mul(num, points[j].X)
			den = gf32.Mul(den, gf32.Sub(points[i].X, points[j].X))
		}
		term := gf32.Mul(points[i].Y, gf32.Mul(num, gf32.Inverse(den)))
		secret = gf32.Add(secret, term)
	}

	return secret, nil
}

// mulLinear multiplies p(x) by the monic linear factor (x - c), i.e.
// (x + c) since subtraction is XOR.
func mulLinear(p Polynomial, c gf32.Elem) Polynomial {
	out := make([]gf32.Elem, len(p.coeffs)+1)
	out[0] = gf32.Mul(p.coeffs[0], c)
	for k := 1; k < len(p.coeffs); k++ {
		out[k] = gf32.Add(gf32.Mul(p.coeffs[k], c), p.coeffs[k-1])
	}
	out[len(p.coeffs)] = p.coeffs[len(p.coeffs)-1]
	return Polynomial{coeffs: out}
}

func checkDistinctAbscissas(points []Point) error {
	seen := make(map[gf32.Elem]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p.X]; ok {
			return ErrDuplicateAbscissa
		}
		seen[p.X] = struct{}{}
	}
	return nil
}
