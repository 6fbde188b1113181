package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/validity"
)

// cache is a fingerprint-keyed, TTL-evicted, size-capped store of
// already-computed validity proofs, so an identical request (the same
// witness, including blindings, supplied twice) avoids re-proving.
type cache struct {
	lru *lru.LRU[string, *validity.Proof]
}

func newCache(size int, ttl time.Duration) *cache {
	return &cache{lru: lru.NewLRU[string, *validity.Proof](size, nil, ttl)}
}

func (c *cache) get(fp string) (*validity.Proof, bool) {
	return c.lru.Get(fp)
}

func (c *cache) put(fp string, p *validity.Proof) {
	c.lru.Add(fp, p)
}

// fingerprint derives a cache key from every value that determines the
// resulting proof. Two calls with the same witness (including
// blindings) produce the same fingerprint and thus hit the cache; any
// difference, however small, produces a different proof and a cache
// miss, which is the correct behavior since this is an exact-request
// cache, not a semantic one.
func fingerprint(before uint64, beforeGamma group.Scalar, amount, after uint64, amountGammaSender, amountGammaRecipient group.Scalar) (string, error) {
	h := sha256.New()

	var amounts [24]byte
	putUint64(amounts[0:8], before)
	putUint64(amounts[8:16], amount)
	putUint64(amounts[16:24], after)
	h.Write(amounts[:])

	for _, s := range []group.Scalar{beforeGamma, amountGammaSender, amountGammaRecipient} {
		b, err := s.MarshalBinary()
		if err != nil {
			return "", cerr.Wrap(cerr.ErrCacheError, "fingerprint: %v", err)
		}
		h.Write(b)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
