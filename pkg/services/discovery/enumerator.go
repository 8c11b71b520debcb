package discovery

import (
	"context"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
	"github.com/de-tools/fabric-migration-atlas/pkg/store/admin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// workspaceResult is the per-workspace accumulator. Workers only ever write
// their own slot, so the fan-in needs no synchronization beyond the join.
type workspaceResult struct {
	items   []domain.Item
	skipped *domain.SkippedWorkspace
}

// enumerateItems lists the content of every workspace, one collector pass per
// item kind in the fixed order dataset, report, dashboard, dataflow.
//
// An entity-not-found on the dataset listing marks the whole workspace as
// skipped and no further kinds are queried for it; the admin API answers that
// way when the workspace itself is inaccessible. Any other per-kind failure
// only loses that kind for that workspace.
//
// Item order is workspace input order x kind order x provider order. Results
// are accumulated per input slot, so the order holds at any concurrency.
func (e *explorer) enumerateItems(ctx context.Context, workspaces []domain.Workspace) ([]domain.Item, []domain.SkippedWorkspace) {
	results := make([]workspaceResult, len(workspaces))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.settings.limit())
	for i, ws := range workspaces {
		g.Go(func() error {
			results[i] = e.enumerateWorkspace(gctx, ws)
			return nil
		})
	}
	// Workers never return errors; failures land in their slot.
	_ = g.Wait()

	var items []domain.Item
	var skipped []domain.SkippedWorkspace
	for _, res := range results {
		if res.skipped != nil {
			skipped = append(skipped, *res.skipped)
			continue
		}
		items = append(items, res.items...)
	}
	return items, skipped
}

func (e *explorer) enumerateWorkspace(ctx context.Context, ws domain.Workspace) workspaceResult {
	logger := zerolog.Ctx(ctx)

	var result workspaceResult
	for _, kind := range domain.ItemKinds {
		items, complete, err := e.gateway.ListItems(ctx, ws.ID, kind)
		if err != nil {
			if kind == domain.ItemKindDataset && admin.IsNotFound(err) {
				logger.Warn().
					Str("workspace", ws.ID).
					Err(err).
					Msg("workspace inaccessible, skipping remaining item kinds")
				return workspaceResult{skipped: &domain.SkippedWorkspace{
					WorkspaceID: ws.ID,
					Name:        ws.Name,
					Reason:      err.Error(),
				}}
			}
			logger.Warn().
				Str("workspace", ws.ID).
				Str("kind", string(kind)).
				Err(err).
				Msg("item listing failed, kind absent for workspace")
			continue
		}
		if !complete {
			logger.Warn().
				Str("workspace", ws.ID).
				Str("kind", string(kind)).
				Int("items", len(items)).
				Msg("item listing incomplete, keeping partial page set")
		}
		result.items = append(result.items, items...)
	}
	return result
}
