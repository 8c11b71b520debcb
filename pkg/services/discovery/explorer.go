package discovery

import (
	"context"
	"time"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type Explorer interface {
	// Discover runs one full enumeration pass and returns the snapshot. The
	// only errors it returns are *FatalError values for the two top-level
	// listings; everything else is recovered into the snapshot's skip lists.
	Discover(ctx context.Context) (*domain.Snapshot, error)
}

type explorer struct {
	gateway  AdminGateway
	settings Settings
}

func NewExplorer(gateway AdminGateway, settings Settings) Explorer {
	return &explorer{gateway: gateway, settings: settings}
}

func (e *explorer) Discover(ctx context.Context) (*domain.Snapshot, error) {
	logger := zerolog.Ctx(ctx)

	capacities, complete, err := e.gateway.ListCapacities(ctx)
	if err != nil {
		return nil, &FatalError{Stage: "capacity listing", Err: err}
	}
	if !complete {
		logger.Warn().Int("capacities", len(capacities)).Msg("capacity listing incomplete")
	}
	capacities = ensureSharedSentinel(capacities)

	workspaces, complete, err := e.gateway.ListWorkspaces(ctx)
	if err != nil {
		return nil, &FatalError{Stage: "workspace listing", Err: err}
	}
	if !complete {
		logger.Warn().Int("workspaces", len(workspaces)).Msg("workspace listing incomplete")
	}
	logger.Info().
		Int("capacities", len(capacities)).
		Int("workspaces", len(workspaces)).
		Msg("tenant inventory listed")

	items, skippedWorkspaces := e.enumerateItems(ctx, workspaces)

	snapshot := &domain.Snapshot{
		TakenAt:           time.Now().UTC(),
		Capacities:        capacities,
		Workspaces:        workspaces,
		Items:             items,
		SkippedWorkspaces: skippedWorkspaces,
	}

	resolved, skippedDatasets := e.resolveDetails(ctx, snapshot.Datasets())
	snapshot.ResolvedModels = resolved
	snapshot.SkippedDatasets = skippedDatasets

	logger.Info().
		Int("items", len(items)).
		Int("resolved_models", len(resolved)).
		Int("skipped_datasets", len(skippedDatasets)).
		Int("skipped_workspaces", len(skippedWorkspaces)).
		Msg("discovery run complete")

	return snapshot, nil
}

// ensureSharedSentinel guarantees exactly one shared-capacity sentinel per
// snapshot, appending one when the API response did not carry it.
func ensureSharedSentinel(capacities []domain.Capacity) []domain.Capacity {
	for _, c := range capacities {
		if c.IsShared() {
			return capacities
		}
	}
	return append(capacities, domain.NewSharedCapacity())
}
