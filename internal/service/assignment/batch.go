package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
	"github.com/Pinoccchio/LawbotWeb-sub000/pkg/ctxutil"
)

// ItemResult is the outcome of one batch item. Exactly one of Outcome and Err is set.
type ItemResult struct {
	Index       int
	ComplaintID uuid.UUID
	OfficerRef  string
	Outcome     *domain.AssignmentOutcome
	Err         error
	Kind        domain.AssignmentErrorKind
}

// OK reports whether the item was assigned.
func (r ItemResult) OK() bool { return r.Err == nil }

// BatchResult summarizes a batch. Items follow input order and
// SuccessCount+FailureCount equals len(Items).
type BatchResult struct {
	BatchID      string
	SuccessCount int
	FailureCount int
	Items        []ItemResult
}

// BatchAssign assigns every item in order, one at a time, waiting on the
// pacer before each item. A failing item never stops the batch. When ctx
// ends, the remaining items are recorded as failed without being attempted.
func (s *Service) BatchAssign(ctx context.Context, input BatchInput) (*BatchResult, error) {
	if err := input.Validate(s.maxBatchItems); err != nil {
		return nil, err
	}

	ctx, batchID := ctxutil.EnsureRequestID(ctx)
	log := ctxutil.Logger(ctx, s.log)
	started := time.Now()

	res := &BatchResult{
		BatchID: batchID,
		Items:   make([]ItemResult, len(input.Items)),
	}

	for i, item := range input.Items {
		r := ItemResult{Index: i, ComplaintID: item.ComplaintID, OfficerRef: item.OfficerRef}

		if err := s.pacer.Wait(ctx); err != nil {
			r.Err = fmt.Errorf("batch stopped before item: %w", err)
		} else {
			r.Outcome, r.Err = s.Assign(ctx, AssignInput{
				ComplaintID: item.ComplaintID,
				OfficerRef:  item.OfficerRef,
				AssignerRef: input.AssignerRef,
				Notes:       input.Notes,
			})
		}

		r.Kind = domain.KindOf(r.Err)
		if r.Err == nil {
			res.SuccessCount++
		} else {
			res.FailureCount++
			log.DebugContext(ctx, "batch item failed",
				slog.Int("index", i),
				slog.String("complaint_id", item.ComplaintID.String()),
				slog.String("kind", r.Kind.String()),
			)
		}
		res.Items[i] = r
	}

	log.InfoContext(ctx, "batch assignment finished",
		slog.Int("items", len(input.Items)),
		slog.Int("succeeded", res.SuccessCount),
		slog.Int("failed", res.FailureCount),
		slog.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}
