package store

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is the BLAKE3 keyed hash of a canonical encoding. Since the
// encoding of a value is unique, so is its digest.
type Digest [32]byte

// digestKey separates store digests from any other BLAKE3 use of the same
// bytes. Changing it invalidates every stored entry.
var digestKey = [32]byte{
	'a', 's', 'n', '1', 'd', 'e', 'r', '.', 's', 't', 'o', 'r', 'e', '.',
	'v', '1', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sum returns the digest of an encoding.
func Sum(encoding []byte) Digest {
	// NewKeyed only fails for keys that are not 32 bytes long
	h, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("store: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	h.Write(encoding)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// ParseDigest parses the 64-character hex form of a digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("parsing digest: %w", err)
	}
	if len(b) != len(d) {
		return d, fmt.Errorf("digest is %d bytes, want %d", len(b), len(d))
	}
	copy(d[:], b)
	return d, nil
}
