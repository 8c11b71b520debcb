package discovery

import (
	"context"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type detailResult struct {
	resolved *domain.SemanticModelDetail
	skipped  *domain.SkippedRecord
}

// resolveDetails fetches the extended semantic model view for every dataset
// item. Every dataset ends up in exactly one of the two returned lists: a
// failed fetch (of any kind, after the client's retries) becomes a skip
// record carrying the failure reason, never a dropped entry.
func (e *explorer) resolveDetails(ctx context.Context, datasets []domain.Item) ([]domain.SemanticModelDetail, []domain.SkippedRecord) {
	logger := zerolog.Ctx(ctx)
	results := make([]detailResult, len(datasets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.settings.limit())
	for i, dataset := range datasets {
		g.Go(func() error {
			detail, err := e.gateway.GetDatasetDetail(gctx, dataset)
			if err != nil {
				logger.Warn().
					Str("dataset", dataset.ID).
					Str("workspace", dataset.WorkspaceID).
					Err(err).
					Msg("dataset detail unavailable, recording skip")
				results[i] = detailResult{skipped: &domain.SkippedRecord{
					DatasetID:   dataset.ID,
					Name:        dataset.Name,
					WorkspaceID: dataset.WorkspaceID,
					Reason:      err.Error(),
				}}
				return nil
			}
			results[i] = detailResult{resolved: &detail}
			return nil
		})
	}
	_ = g.Wait()

	var resolved []domain.SemanticModelDetail
	var skipped []domain.SkippedRecord
	for _, res := range results {
		switch {
		case res.resolved != nil:
			resolved = append(resolved, *res.resolved)
		case res.skipped != nil:
			skipped = append(skipped, *res.skipped)
		}
	}
	return resolved, skipped
}
