package domain

import "time"

// StorageMode classifies how a semantic model stores its data.
type StorageMode string

const (
	StorageModeImport       StorageMode = "import"
	StorageModeDirectQuery  StorageMode = "direct_query"
	StorageModePremiumFiles StorageMode = "premium_files"
	StorageModeUnknown      StorageMode = "unknown"
)

// SemanticModelDetail is the extended view of a dataset item, fetched one
// call per dataset from the admin API.
type SemanticModelDetail struct {
	DatasetID    string
	Name         string
	WorkspaceID  string
	ConfiguredBy string
	StorageMode  StorageMode

	IsRefreshable             bool
	EffectiveIdentityRequired bool
	EffectiveIdentityRoles    bool
	GatewayRequired           bool

	CreatedAt time.Time
}

// SkippedRecord marks a dataset whose detail could not be resolved. Skips are
// reported alongside resolved models, never silently dropped: every dataset
// ends up in exactly one of the two lists.
type SkippedRecord struct {
	DatasetID   string
	Name        string
	WorkspaceID string
	Reason      string
}
