package domain

// SharedCapacityID is the sentinel id representing "no dedicated capacity".
// Workspaces without a capacity assignment are grouped under it; exactly one
// capacity per discovery run carries this id.
const SharedCapacityID = "-1"

// SharedCapacitySKU is the SKU code carried by the shared sentinel capacity.
const SharedCapacitySKU = "Shared"

type CapacityAdmin struct {
	Identity string
}

type Capacity struct {
	ID     string
	Name   string
	SKU    string
	State  string
	Region string // empty when unknown or for the shared sentinel
	Admins []CapacityAdmin
}

// IsShared reports whether the capacity is the shared sentinel.
func (c Capacity) IsShared() bool {
	return c.ID == SharedCapacityID
}

// NewSharedCapacity returns the sentinel capacity injected once per run for
// workspaces that are not on dedicated capacity.
func NewSharedCapacity() Capacity {
	return Capacity{
		ID:   SharedCapacityID,
		Name: "Shared Capacity",
		SKU:  SharedCapacitySKU,
	}
}
