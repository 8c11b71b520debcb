// Package discovery walks the tenant admin API and folds the results into an
// immutable snapshot: capacities, workspaces, content items, resolved semantic
// model details, and explicit skip records for everything that could not be
// read. Per-workspace and per-item failures never abort the run; only a
// failed top-level capacity or workspace listing is fatal.
package discovery

import (
	"context"
	"fmt"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
)

// AdminGateway is the admin API capability the discovery run consumes. The
// booleans on the list calls report whether pagination ran to completion;
// an incomplete listing is usable but logged.
type AdminGateway interface {
	ListCapacities(ctx context.Context) ([]domain.Capacity, bool, error)
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, bool, error)
	ListItems(ctx context.Context, workspaceID string, kind domain.ItemKind) ([]domain.Item, bool, error)
	GetDatasetDetail(ctx context.Context, dataset domain.Item) (domain.SemanticModelDetail, error)
}

// FatalError aborts the whole run. It is reserved for the two top-level
// listings without which there is nothing to analyze.
type FatalError struct {
	Stage string
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("discovery failed at %s: %v", e.Stage, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Settings controls the fan-out of the enumeration and resolution stages.
type Settings struct {
	// Concurrency bounds the number of workspaces enumerated (and dataset
	// details resolved) in flight. 1 keeps the run strictly sequential.
	Concurrency int
}

func DefaultSettings() Settings {
	return Settings{Concurrency: 1}
}

func (s Settings) limit() int {
	if s.Concurrency < 1 {
		return 1
	}
	return s.Concurrency
}
