package shamir

import "github.com/mrz1836/shamir32/internal/secmem"

// RecoverSecretSecure is a supplemental variant of RecoverSecret for
// callers who want the reconstructed secret held in mlock'd,
// explicitly-zeroable memory rather than a plain []byte that lingers
// on the Go heap until the garbage collector gets to it. Validation
// and reconstruction semantics are identical to RecoverSecret; only
// the result's storage differs.
//
// Callers must call Destroy on the returned SecureBytes once done
// with the secret.
func RecoverSecretSecure(shards []Shard) (*secmem.SecureBytes, error) {
	secret, err := RecoverSecret(shards)
	if err != nil {
		return nil, err
	}
	sb := secmem.FromSlice(secret)
	for i := range secret {
		secret[i] = 0
	}
	return sb, nil
}
