package shamir

import (
	"testing"
)

// FuzzDealerSecretRoundTrip is the Go-native analog of the reference
// implementation's quickcheck basic_roundtrip property: for any
// threshold and any secret bytes, Dealer.Secret must return exactly
// what was passed to New.
func FuzzDealerSecretRoundTrip(f *testing.F) {
	f.Add(uint8(1), []byte("hello"))
	f.Add(uint8(3), []byte{})
	f.Add(uint8(2), []byte{0x01, 0x02, 0x03, 0x04, 0x05})
	f.Add(uint8(1), []byte{0x00})
	f.Add(uint8(8), []byte("a longer secret spanning multiple four byte chunks"))

	f.Fuzz(func(t *testing.T, rawThreshold uint8, secret []byte) {
		threshold := uint32(rawThreshold)
		if threshold == 0 {
			threshold = 1
		}
		if len(secret) > 4096 {
			secret = secret[:4096]
		}

		d, err := New(threshold, secret)
		if err != nil {
			t.Fatalf("New(%d, %d bytes) failed: %v", threshold, len(secret), err)
		}
		if got := d.Secret(); !bytesEqual(got, secret) {
			t.Fatalf("Secret() = %x, want %x", got, secret)
		}
	})
}

// FuzzShardWireRoundTrip is the analog of shard_bytes_roundtrip: any
// shard minted by a Dealer must survive a ToWire/ShardFromWire cycle
// unchanged.
func FuzzShardWireRoundTrip(f *testing.F) {
	f.Add(uint8(1), []byte("hello"))
	f.Add(uint8(4), []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE})
	f.Add(uint8(1), []byte{})

	f.Fuzz(func(t *testing.T, rawThreshold uint8, secret []byte) {
		threshold := uint32(rawThreshold)
		if threshold == 0 {
			threshold = 1
		}
		if len(secret) > 4096 {
			secret = secret[:4096]
		}

		d, err := New(threshold, secret)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		shard, err := d.NextShard()
		if err != nil {
			t.Fatalf("NextShard failed: %v", err)
		}

		wire := shard.ToWire()
		got, err := ShardFromWire(wire)
		if err != nil {
			t.Fatalf("ShardFromWire failed: %v", err)
		}
		if !shard.Equal(got) {
			t.Fatalf("round-tripped shard does not match original")
		}
		if got.ID() != shard.ID() {
			t.Fatalf("round-tripped shard ID changed: %q != %q", got.ID(), shard.ID())
		}
	})
}

// TestRecoverSecretFailure and TestRecoverSecretSuccess are the
// bounded (non-fuzz) analogs of recover_secret_fail / recover_secret_success:
// recovery with fewer shards than their declared threshold must fail
// with an error. (Shards whose threshold field has been lowered are not
// caught and yield a wrong secret; see TestUnderThresholdRecoveryIsWrong.)
func TestRecoverSecretFailure(t *testing.T) {
	t.Parallel()
	d, err := New(5, []byte("bounded under-threshold recovery"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for n := 0; n < 5; n++ {
		shards := make([]Shard, n)
		for i := range shards {
			s, err := d.NextShard()
			if err != nil {
				t.Fatalf("NextShard failed: %v", err)
			}
			shards[i] = s
		}

		if _, err := RecoverSecret(shards); err == nil {
			t.Fatalf("RecoverSecret with %d of 5 required shards should have failed", n)
		}
	}
}

func TestRecoverSecretSuccess(t *testing.T) {
	t.Parallel()
	secret := []byte("bounded exact-threshold recovery succeeds")
	d, err := New(5, secret)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	shards := make([]Shard, 5)
	for i := range shards {
		s, err := d.NextShard()
		if err != nil {
			t.Fatalf("NextShard failed: %v", err)
		}
		shards[i] = s
	}

	got, err := RecoverSecret(shards)
	if err != nil {
		t.Fatalf("RecoverSecret failed: %v", err)
	}
	if !bytesEqual(got, secret) {
		t.Fatalf("RecoverSecret() = %x, want %x", got, secret)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
