package domain

type ItemKind string

const (
	ItemKindDataset   ItemKind = "dataset"
	ItemKindReport    ItemKind = "report"
	ItemKindDashboard ItemKind = "dashboard"
	ItemKindDataflow  ItemKind = "dataflow"
)

// ItemKinds lists the enumerated kinds in enumeration order. The dataset
// listing goes first: an entity-not-found there marks the whole workspace
// inaccessible and short-circuits the remaining kinds.
var ItemKinds = []ItemKind{ItemKindDataset, ItemKindReport, ItemKindDashboard, ItemKindDataflow}

type Item struct {
	ID          string
	Name        string
	WorkspaceID string
	Kind        ItemKind

	// Report only.
	IsPaginated bool
	DatasetID   string // bound dataset, may be empty

	// Dataset only.
	IsRefreshable bool
}
