package privacy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/internal/log"
	"github.com/takakv/confidential-core/validity"
)

// TransferRequest is one transfer's witness, as passed to GenerateBatch.
type TransferRequest struct {
	Before               uint64
	BeforeGamma          group.Scalar
	Amount               uint64
	After                uint64
	AmountGammaSender    group.Scalar
	AmountGammaRecipient group.Scalar
}

// GenerateBatch proves every request in reqs. When config.EnableParallel
// is set, proofs are computed concurrently (bounded by
// config.MaxBatchWorkers) via errgroup, rather than merely sequentially
// despite the name — each request's proving work is independent, so
// there is no correctness reason not to dispatch it in parallel.
func (p *Privacy) GenerateBatch(ctx context.Context, reqs []TransferRequest) ([]*validity.Proof, []group.Scalar, error) {
	proofs := make([]*validity.Proof, len(reqs))
	afterGammas := make([]group.Scalar, len(reqs))

	if !p.config.EnableParallel {
		for i, r := range reqs {
			proof, ag, err := p.GenerateTransfer(r.Before, r.BeforeGamma, r.Amount, r.After, r.AmountGammaSender, r.AmountGammaRecipient)
			if err != nil {
				return nil, nil, fmt.Errorf("batch item %d: %w", i, err)
			}
			proofs[i], afterGammas[i] = proof, ag
		}
		return proofs, afterGammas, nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.config.MaxBatchWorkers)
	for i, r := range reqs {
		i, r := i, r
		g.Go(func() error {
			proof, ag, err := p.GenerateTransfer(r.Before, r.BeforeGamma, r.Amount, r.After, r.AmountGammaSender, r.AmountGammaRecipient)
			if err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			proofs[i], afterGammas[i] = proof, ag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	log.Logger().Info().Int("count", len(reqs)).Msg("generated proof batch in parallel")
	return proofs, afterGammas, nil
}

// VerifyBatch verifies every proof in proofs, with the same
// parallel-dispatch behavior as GenerateBatch.
func (p *Privacy) VerifyBatch(ctx context.Context, proofs []*validity.Proof) error {
	if !p.config.EnableParallel {
		for i, proof := range proofs {
			if err := p.VerifyTransfer(proof); err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
		}
		return nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.config.MaxBatchWorkers)
	for i, proof := range proofs {
		i, proof := i, proof
		g.Go(func() error {
			if err := p.VerifyTransfer(proof); err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
