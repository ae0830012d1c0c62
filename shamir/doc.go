// Package shamir implements Shamir's Secret Sharing over GF(2^32).
//
// A secret of arbitrary byte length is split into an unbounded supply
// of shards such that any k of them (the threshold) reconstruct the
// secret, while any k-1 reveal nothing about it. The package provides
// three entry points: Dealer, the full sharing state, which can mint
// new shards on demand; Recover, which rebuilds a Dealer from exactly
// k shards so more shards can be minted later; and RecoverSecret, a
// cheaper path that only recovers the secret bytes.
//
// The package does not protect against corrupted or maliciously
// crafted shards: recovering from the wrong set of shards silently
// returns the wrong secret rather than an error. Callers that need
// integrity must authenticate shards themselves (a MAC over the
// secret, or a checksum per shard) outside this package.
package shamir
