package adapters

import (
	"testing"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/api"
	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestMapAPICapacityToDomain_RegionNormalization(t *testing.T) {
	cases := []struct {
		name   string
		region *string
		want   string
	}{
		{"absent", nil, ""},
		{"empty", strptr(""), ""},
		{"na literal", strptr("N/A"), ""},
		{"na lowercase", strptr("n/a"), ""},
		{"padded", strptr("  West Europe "), "West Europe"},
		{"plain", strptr("North Europe"), "North Europe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			capacity := MapAPICapacityToDomain(api.Capacity{ID: "cap-1", Region: tc.region})
			assert.Equal(t, tc.want, capacity.Region)
		})
	}
}

func TestMapAPIWorkspaceToDomain_NilCapacityMeansShared(t *testing.T) {
	ws := MapAPIWorkspaceToDomain(api.Workspace{ID: "ws-1", Name: "Sales"})
	assert.Equal(t, "", ws.CapacityID)
	assert.Equal(t, domain.SharedCapacityID, ws.EffectiveCapacityID())

	ws = MapAPIWorkspaceToDomain(api.Workspace{ID: "ws-2", CapacityID: strptr("cap-1")})
	assert.Equal(t, "cap-1", ws.EffectiveCapacityID())
}

func TestMapAPIReportToDomainItem_PaginatedFlag(t *testing.T) {
	paginated := MapAPIReportToDomainItem("ws-1", api.Report{ID: "rep-1", ReportType: "PaginatedReport"})
	assert.True(t, paginated.IsPaginated)
	assert.Equal(t, domain.ItemKindReport, paginated.Kind)

	interactive := MapAPIReportToDomainItem("ws-1", api.Report{ID: "rep-2", ReportType: "PowerBIReport", DatasetID: strptr("ds-1")})
	assert.False(t, interactive.IsPaginated)
	assert.Equal(t, "ds-1", interactive.DatasetID)
}

func TestMapAPIDatasetDetailToDomain_StorageModes(t *testing.T) {
	cases := map[string]domain.StorageMode{
		"Abf":          domain.StorageModeImport,
		"Import":       domain.StorageModeImport,
		"DirectQuery":  domain.StorageModeDirectQuery,
		"PremiumFiles": domain.StorageModePremiumFiles,
		"":             domain.StorageModeUnknown,
		"SomethingNew": domain.StorageModeUnknown,
	}
	for raw, want := range cases {
		detail := MapAPIDatasetDetailToDomain("ws-1", api.DatasetDetail{ID: "ds-1", TargetStorageMode: raw})
		assert.Equal(t, want, detail.StorageMode, "storage mode %q", raw)
	}
}

func TestMapAPIDatasetDetailToDomain_Timestamps(t *testing.T) {
	detail := MapAPIDatasetDetailToDomain("ws-1", api.DatasetDetail{
		ID:          "ds-1",
		CreatedDate: strptr("2024-03-01T10:00:00Z"),
	})
	assert.Equal(t, 2024, detail.CreatedAt.Year())

	garbled := MapAPIDatasetDetailToDomain("ws-1", api.DatasetDetail{
		ID:          "ds-2",
		CreatedDate: strptr("not a timestamp"),
	})
	assert.True(t, garbled.CreatedAt.IsZero(), "unparsable timestamps degrade to zero time")
}
