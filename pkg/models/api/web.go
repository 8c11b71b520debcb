package api

// Response types of our own web surface.

type CapacityResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	SKU    string `json:"sku"`
	State  string `json:"state"`
	Region string `json:"region,omitempty"`
	Shared bool   `json:"shared"`
}

type WorkspaceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	State      string `json:"state"`
	CapacityID string `json:"capacityId,omitempty"`
}

type FindingResponse struct {
	Rule           string   `json:"rule"`
	Severity       string   `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Count          int      `json:"count"`
	AffectedIDs    []string `json:"affectedIds,omitempty"`
}

type SummaryResponse struct {
	Capacities        int `json:"capacities"`
	Workspaces        int `json:"workspaces"`
	Items             int `json:"items"`
	ResolvedModels    int `json:"resolvedModels"`
	SkippedDatasets   int `json:"skippedDatasets"`
	SkippedWorkspaces int `json:"skippedWorkspaces"`
	Blockers          int `json:"blockers"`
	Warnings          int `json:"warnings"`
	Informational     int `json:"informational"`
}

type SkippedDatasetResponse struct {
	DatasetID   string `json:"datasetId"`
	Name        string `json:"name"`
	WorkspaceID string `json:"workspaceId"`
	Reason      string `json:"reason"`
}

type AssessmentResponse struct {
	Blockers        []FindingResponse        `json:"blockers"`
	Warnings        []FindingResponse        `json:"warnings"`
	Informational   []FindingResponse        `json:"informational"`
	Summary         SummaryResponse          `json:"summary"`
	SkippedDatasets []SkippedDatasetResponse `json:"skippedDatasets,omitempty"`
}
