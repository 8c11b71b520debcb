package domain

import "time"

// Snapshot is the immutable result of one discovery run. A repeated run
// produces a wholly new snapshot; nothing here is updated in place.
type Snapshot struct {
	TakenAt time.Time

	Capacities []Capacity
	Workspaces []Workspace
	Items      []Item

	ResolvedModels  []SemanticModelDetail
	SkippedDatasets []SkippedRecord

	SkippedWorkspaces []SkippedWorkspace
}

// Datasets returns the dataset items of the snapshot in item order.
func (s *Snapshot) Datasets() []Item {
	var datasets []Item
	for _, item := range s.Items {
		if item.Kind == ItemKindDataset {
			datasets = append(datasets, item)
		}
	}
	return datasets
}
