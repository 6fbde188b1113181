package privacy

import (
	"time"

	"github.com/takakv/confidential-core/bulletproofs"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/internal/log"
	"github.com/takakv/confidential-core/validity"
)

// Privacy is the orchestration layer: a configured set of range-proof
// generators plus the optional proof cache, through which every
// transfer is proved and verified.
type Privacy struct {
	config Config
	params *bulletproofs.Params
	cache  *cache
}

// New builds a Privacy instance from config, deriving range-proof
// generators for config.RangeBits once up front.
func New(config Config) *Privacy {
	p := &Privacy{
		config: config,
		params: bulletproofs.Setup(config.RangeBits),
	}
	if config.EnableCaching {
		p.cache = newCache(config.CacheSize, config.CacheTTL)
	}
	return p
}

// GenerateTransfer proves a transfer of amount out of before, asserting
// the caller's claimed resulting balance after, and returns the proof
// together with the blinding of the resulting balance commitment. See
// validity.GenerateTransfer for the parameters' meaning.
func (p *Privacy) GenerateTransfer(
	before uint64, beforeGamma group.Scalar,
	amount, after uint64, amountGammaSender, amountGammaRecipient group.Scalar,
) (*validity.Proof, group.Scalar, error) {
	afterGamma := group.Ristretto255.NewScalar().Sub(beforeGamma, amountGammaSender)

	var fp string
	if p.cache != nil {
		var err error
		fp, err = fingerprint(before, beforeGamma, amount, after, amountGammaSender, amountGammaRecipient)
		if err == nil {
			if cached, ok := p.cache.get(fp); ok {
				log.Logger().Debug().Str("fingerprint", fp).Msg("proof cache hit")
				return cached, afterGamma, nil
			}
		}
	}

	start := time.Now()
	proof, gotAfterGamma, err := validity.GenerateTransfer(p.params, before, beforeGamma, amount, after, amountGammaSender, amountGammaRecipient)
	if err != nil {
		return nil, nil, err
	}

	if p.cache != nil && fp != "" {
		p.cache.put(fp, proof)
	}
	log.Logger().Info().Dur("elapsed", time.Since(start)).Msg("generated transfer proof")

	return proof, gotAfterGamma, nil
}

// VerifyTransfer verifies proof against this instance's range-proof
// parameters.
func (p *Privacy) VerifyTransfer(proof *validity.Proof) error {
	return validity.Verify(p.params, proof)
}
