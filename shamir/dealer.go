package shamir

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	"github.com/mrz1836/shamir32/internal/gf32"
)

// randReader is the cryptographic randomness source used for every
// coefficient and every shard x-value. It is an unexported package
// variable and is never exposed as a public option, since
// Shamir's security guarantee depends entirely on the source being
// unpredictable (spec: "Implementations must not expose a
// seeded-RNG overload in public API").
var randReader io.Reader = rand.Reader

// chunkSize is the number of secret bytes bound to each polynomial's
// constant term.
const chunkSize = 4

// Dealer holds the full sharing state for a secret: one polynomial per
// 4-byte chunk of the secret, all of degree threshold-1. A Dealer is
// immutable once constructed by New or Recover; minting shards with
// NextShard does not mutate any observable state.
type Dealer struct {
	polys     []Polynomial
	threshold uint32
	secretLen int
	logger    *slog.Logger
}

// Option configures a Dealer constructed by New.
type Option func(*Dealer)

// WithLogger attaches a structured logger for debug-level
// instrumentation (dealer construction, shard minting). Recover and
// RecoverSecret do not log, and a Dealer returned by Recover uses the
// default discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dealer) { d.logger = l }
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// New constructs a Dealer that shards secret, requiring at least
// threshold shards to reconstruct it. The secret is partitioned into
// consecutive 4-byte chunks (the final chunk is right-zero-padded if
// short); each chunk becomes the constant term of a fresh random
// polynomial of degree threshold-1.
func New(threshold uint32, secret []byte, opts ...Option) (*Dealer, error) {
	if threshold == 0 {
		return nil, ErrZeroThreshold
	}

	d := &Dealer{threshold: threshold, secretLen: len(secret), logger: defaultLogger()}
	for _, opt := range opts {
		opt(d)
	}

	degree := int(threshold) - 1
	numChunks := (len(secret) + chunkSize - 1) / chunkSize
	polys := make([]Polynomial, numChunks)

	for i := 0; i < numChunks; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > len(secret) {
			end = len(secret)
		}

		p, err := NewRandomPolynomial(degree, randReader)
		if err != nil {
			return nil, fmt.Errorf("shamir: generating polynomial %d: %w", i, err)
		}
		p.SetConstant(gf32.FromBytes(secret[start:end]))
		polys[i] = p
	}

	d.polys = polys
	d.logger.Debug("dealer constructed", "threshold", threshold, "secret_len", len(secret), "polys", numChunks)
	return d, nil
}

// Threshold returns the number of unique shards required to recover
// the secret.
func (d *Dealer) Threshold() uint32 { return d.threshold }

// Secret reassembles the original secret bytes from the dealer's
// polynomial constants. It is the exact inverse of New on the bytes
// originally passed to it.
func (d *Dealer) Secret() []byte {
	return assembleSecret(constants(d.polys), d.secretLen)
}

// NextShard mints a fresh shard by sampling a new random non-zero x
// and evaluating every polynomial at it.
//
// NOTE: x is sampled independently each call, so two calls may
// (rarely) produce the same x. The birthday bound makes collisions
// non-negligible around 2^16 shards from a single dealer. Dealer does
// not detect or prevent this; callers needing guaranteed-distinct
// shards must track minted x-values (or identifiers) themselves.
func (d *Dealer) NextShard() (Shard, error) {
	x, err := gf32.RandomNonZero(randReader)
	if err != nil {
		return Shard{}, fmt.Errorf("shamir: sampling shard x: %w", err)
	}

	ys := make([]gf32.Elem, len(d.polys))
	for i, p := range d.polys {
		y := p.Evaluate(x)
		if d.threshold > 1 && y == p.Constant() {
			// Sanity check, not a security property: with a random
			// non-zero x and a non-constant polynomial this has
			// probability 1/(2^32-1). threshold==1 polynomials are
			// always constant, so the check would always fire and is
			// skipped.
			panic("shamir: evaluated polynomial collided with its own constant term")
		}
		ys[i] = y
	}

	d.logger.Debug("shard minted", "id_len", IDLength, "threshold", d.threshold)
	return Shard{x: x, ys: ys, threshold: d.threshold, secretLen: d.secretLen}, nil
}

// Recover reconstructs an entire Dealer — every polynomial, not just
// its constant term — from exactly threshold shards, so that the
// caller can mint additional shards afterward. Use RecoverSecret
// instead if only the secret is needed; it is significantly cheaper.
func Recover(shards []Shard) (*Dealer, error) {
	threshold, ysLen, secretLen, err := validateShards(shards)
	if err != nil {
		return nil, err
	}

	polys := make([]Polynomial, ysLen)
	for i := 0; i < ysLen; i++ {
		points := make([]Point, len(shards))
		for j, s := range shards {
			points[j] = Point{X: s.x, Y: s.ys[i]}
		}
		p, err := Lagrange(int(threshold)-1, points)
		if err != nil {
			return nil, err
		}
		polys[i] = p
	}

	return &Dealer{
		polys:     polys,
		threshold: threshold,
		secretLen: secretLen,
		logger:    defaultLogger(),
	}, nil
}

// validateShards applies the consistency checks shared by Recover and
// RecoverSecret: at least one shard, every shard agreeing on
// threshold/value-count/secret length, and exactly threshold shards
// supplied.
func validateShards(shards []Shard) (threshold uint32, ysLen, secretLen int, err error) {
	if len(shards) == 0 {
		return 0, 0, 0, ErrNoShards
	}

	threshold = shards[0].threshold
	ysLen = len(shards[0].ys)
	secretLen = shards[0].secretLen

	for _, s := range shards[1:] {
		if s.threshold != threshold || len(s.ys) != ysLen || s.secretLen != secretLen {
			return 0, 0, 0, ErrInconsistentShards
		}
	}

	if len(shards) != int(threshold) {
		return 0, 0, 0, ErrShareCountMismatch
	}

	return threshold, ysLen, secretLen, nil
}

func constants(polys []Polynomial) []gf32.Elem {
	out := make([]gf32.Elem, len(polys))
	for i, p := range polys {
		out[i] = p.Constant()
	}
	return out
}

func assembleSecret(constants []gf32.Elem, secretLen int) []byte {
	buf := make([]byte, 0, len(constants)*chunkSize)
	for _, c := range constants {
		b := c.Bytes()
		buf = append(buf, b[:]...)
	}
	if len(buf) > secretLen {
		buf = buf[:secretLen]
	}
	return buf
}
