// Package adapters maps admin API wire types onto domain models. All
// normalization of loosely-typed response fields happens here, so the rest of
// the pipeline only ever sees validated domain values.
package adapters

import (
	"strings"
	"time"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/api"
	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
)

const reportTypePaginated = "PaginatedReport"

func MapAPICapacityToDomain(c api.Capacity) domain.Capacity {
	admins := make([]domain.CapacityAdmin, 0, len(c.Admins))
	for _, a := range c.Admins {
		admins = append(admins, domain.CapacityAdmin{Identity: a})
	}
	return domain.Capacity{
		ID:     c.ID,
		Name:   c.DisplayName,
		SKU:    c.SKU,
		State:  c.State,
		Region: normalizeRegion(c.Region),
		Admins: admins,
	}
}

func MapAPIWorkspaceToDomain(w api.Workspace) domain.Workspace {
	capacityID := ""
	if w.CapacityID != nil {
		capacityID = *w.CapacityID
	}
	return domain.Workspace{
		ID:                    w.ID,
		Name:                  w.Name,
		State:                 w.State,
		Type:                  w.Type,
		CapacityID:            capacityID,
		IsReadOnly:            w.IsReadOnly,
		IsOnDedicatedCapacity: w.IsOnDedicatedCapacity,
	}
}

func MapAPIDatasetToDomainItem(workspaceID string, d api.Dataset) domain.Item {
	return domain.Item{
		ID:            d.ID,
		Name:          d.Name,
		WorkspaceID:   workspaceID,
		Kind:          domain.ItemKindDataset,
		IsRefreshable: d.IsRefreshable,
	}
}

func MapAPIReportToDomainItem(workspaceID string, r api.Report) domain.Item {
	datasetID := ""
	if r.DatasetID != nil {
		datasetID = *r.DatasetID
	}
	return domain.Item{
		ID:          r.ID,
		Name:        r.Name,
		WorkspaceID: workspaceID,
		Kind:        domain.ItemKindReport,
		IsPaginated: r.ReportType == reportTypePaginated,
		DatasetID:   datasetID,
	}
}

func MapAPIDashboardToDomainItem(workspaceID string, d api.Dashboard) domain.Item {
	return domain.Item{
		ID:          d.ID,
		Name:        d.DisplayName,
		WorkspaceID: workspaceID,
		Kind:        domain.ItemKindDashboard,
	}
}

func MapAPIDataflowToDomainItem(workspaceID string, d api.Dataflow) domain.Item {
	return domain.Item{
		ID:          d.ObjectID,
		Name:        d.Name,
		WorkspaceID: workspaceID,
		Kind:        domain.ItemKindDataflow,
	}
}

func MapAPIDatasetDetailToDomain(workspaceID string, d api.DatasetDetail) domain.SemanticModelDetail {
	var createdAt time.Time
	if d.CreatedDate != nil {
		// Timestamps arrive in RFC 3339; an unparsable value degrades to the
		// zero time rather than failing the whole detail.
		if ts, err := time.Parse(time.RFC3339, *d.CreatedDate); err == nil {
			createdAt = ts
		}
	}
	return domain.SemanticModelDetail{
		DatasetID:                 d.ID,
		Name:                      d.Name,
		WorkspaceID:               workspaceID,
		ConfiguredBy:              d.ConfiguredBy,
		StorageMode:               parseStorageMode(d.TargetStorageMode),
		IsRefreshable:             d.IsRefreshable,
		EffectiveIdentityRequired: d.IsEffectiveIdentityRequired,
		EffectiveIdentityRoles:    d.IsEffectiveIdentityRolesRequired,
		GatewayRequired:           d.IsOnPremGatewayRequired,
		CreatedAt:                 createdAt,
	}
}

func parseStorageMode(raw string) domain.StorageMode {
	switch strings.ToLower(raw) {
	case "abf", "import":
		return domain.StorageModeImport
	case "directquery":
		return domain.StorageModeDirectQuery
	case "premiumfiles":
		return domain.StorageModePremiumFiles
	default:
		return domain.StorageModeUnknown
	}
}

// normalizeRegion collapses the admin API's "no region" spellings (absent
// field, empty string, "N/A") into the empty string so that region comparisons
// never treat them as distinct values.
func normalizeRegion(region *string) string {
	if region == nil {
		return ""
	}
	r := strings.TrimSpace(*region)
	if strings.EqualFold(r, "n/a") {
		return ""
	}
	return r
}
