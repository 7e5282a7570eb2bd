package service

import (
	"context"
	"fmt"

	"github.com/alcotheque/cellar/internal/lifecycle"
	"github.com/alcotheque/cellar/internal/logger"
)

// Sweep is the consistency backstop for the denormalized status field:
// it re-derives status from the stored counters for every bottle and
// issues a status-only repair write where the two disagree. Counters and
// history are never touched. Returns the number of bottles repaired;
// zero on a clean pass, which also makes back-to-back runs idempotent.
func (s *service) Sweep(ctx context.Context, ownerID string) (int, error) {
	const op = "bottle.service.Sweep"
	log := logger.With(logger.String("owner_id", ownerID))

	bottles, err := s.repo.List(ctx, ownerID)
	if err != nil {
		log.Error(ctx, "repository list bottles", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	repaired := 0
	for _, b := range bottles {
		derived := lifecycle.Derive(b.Quantities)
		if derived == b.Status {
			continue
		}

		if err := s.repo.UpdateStatus(ctx, b.ID, derived); err != nil {
			log.Error(ctx, "repository repair status",
				logger.String("bottle_id", b.ID), logger.ErrorF(err))
			return repaired, fmt.Errorf("%s: %w", op, err)
		}

		log.Warn(ctx, "status drift repaired",
			logger.String("bottle_id", b.ID),
			logger.String("stored", string(b.Status)),
			logger.String("derived", string(derived)),
		)

		b.Status = derived
		s.remember(b)
		repaired++
	}

	return repaired, nil
}

// SweepAll runs the repair pass for every known owner. A failing owner
// is logged and skipped so one bad tenant cannot stall the whole sweep.
func (s *service) SweepAll(ctx context.Context) (int, error) {
	const op = "bottle.service.SweepAll"

	owners, err := s.repo.Owners(ctx)
	if err != nil {
		logger.Error(ctx, "repository list owners", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	repaired := 0
	for _, owner := range owners {
		n, err := s.Sweep(ctx, owner)
		repaired += n
		if err != nil {
			logger.Error(ctx, "sweep owner failed",
				logger.String("owner_id", owner), logger.ErrorF(err))
		}
	}

	return repaired, nil
}
