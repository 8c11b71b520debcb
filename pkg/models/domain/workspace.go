package domain

// WorkspaceStateActive is the lifecycle state of a usable workspace; anything
// else counts as inactive for readiness purposes.
const WorkspaceStateActive = "Active"

type Workspace struct {
	ID                    string
	Name                  string
	State                 string
	Type                  string
	CapacityID            string // empty when the workspace is on shared capacity
	IsReadOnly            bool
	IsOnDedicatedCapacity bool
}

// EffectiveCapacityID resolves the capacity a workspace is grouped under,
// falling back to the shared sentinel when no capacity is assigned.
func (w Workspace) EffectiveCapacityID() string {
	if w.CapacityID == "" {
		return SharedCapacityID
	}
	return w.CapacityID
}

// SkippedWorkspace records a workspace whose content could not be enumerated.
type SkippedWorkspace struct {
	WorkspaceID string
	Name        string
	Reason      string
}
