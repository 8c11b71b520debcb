package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/de-tools/fabric-migration-atlas/pkg/adapters"
	"github.com/de-tools/fabric-migration-atlas/pkg/models/api"
	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
)

// ListCapacities returns every capacity visible to the tenant admin. The
// boolean reports whether pagination ran to completion.
func (c *Client) ListCapacities(ctx context.Context) ([]domain.Capacity, bool, error) {
	coll, err := c.collectAll(ctx, "capacities", "admin/capacities")
	if err != nil {
		return nil, false, err
	}

	capacities := make([]domain.Capacity, 0, len(coll.Records))
	for _, raw := range coll.Records {
		var capacity api.Capacity
		if err := json.Unmarshal(raw, &capacity); err != nil {
			return nil, false, fmt.Errorf("failed to decode capacity record: %w", err)
		}
		capacities = append(capacities, adapters.MapAPICapacityToDomain(capacity))
	}
	return capacities, coll.Complete, nil
}

func (c *Client) ListWorkspaces(ctx context.Context) ([]domain.Workspace, bool, error) {
	coll, err := c.collectAll(ctx, "workspaces", "admin/groups")
	if err != nil {
		return nil, false, err
	}

	workspaces := make([]domain.Workspace, 0, len(coll.Records))
	for _, raw := range coll.Records {
		var ws api.Workspace
		if err := json.Unmarshal(raw, &ws); err != nil {
			return nil, false, fmt.Errorf("failed to decode workspace record: %w", err)
		}
		workspaces = append(workspaces, adapters.MapAPIWorkspaceToDomain(ws))
	}
	return workspaces, coll.Complete, nil
}

// ListItems enumerates one content kind of one workspace.
func (c *Client) ListItems(ctx context.Context, workspaceID string, kind domain.ItemKind) ([]domain.Item, bool, error) {
	resource := fmt.Sprintf("%ss of workspace %s", kind, workspaceID)
	path := fmt.Sprintf("admin/groups/%s/%ss", workspaceID, kind)

	coll, err := c.collectAll(ctx, resource, path)
	if err != nil {
		return nil, false, err
	}

	items := make([]domain.Item, 0, len(coll.Records))
	for _, raw := range coll.Records {
		item, err := decodeItem(workspaceID, kind, raw)
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)
	}
	return items, coll.Complete, nil
}

func decodeItem(workspaceID string, kind domain.ItemKind, raw json.RawMessage) (domain.Item, error) {
	switch kind {
	case domain.ItemKindDataset:
		var d api.Dataset
		if err := json.Unmarshal(raw, &d); err != nil {
			return domain.Item{}, fmt.Errorf("failed to decode dataset record: %w", err)
		}
		return adapters.MapAPIDatasetToDomainItem(workspaceID, d), nil
	case domain.ItemKindReport:
		var r api.Report
		if err := json.Unmarshal(raw, &r); err != nil {
			return domain.Item{}, fmt.Errorf("failed to decode report record: %w", err)
		}
		return adapters.MapAPIReportToDomainItem(workspaceID, r), nil
	case domain.ItemKindDashboard:
		var d api.Dashboard
		if err := json.Unmarshal(raw, &d); err != nil {
			return domain.Item{}, fmt.Errorf("failed to decode dashboard record: %w", err)
		}
		return adapters.MapAPIDashboardToDomainItem(workspaceID, d), nil
	case domain.ItemKindDataflow:
		var d api.Dataflow
		if err := json.Unmarshal(raw, &d); err != nil {
			return domain.Item{}, fmt.Errorf("failed to decode dataflow record: %w", err)
		}
		return adapters.MapAPIDataflowToDomainItem(workspaceID, d), nil
	default:
		return domain.Item{}, fmt.Errorf("unsupported item kind: %s", kind)
	}
}

// GetDatasetDetail fetches the extended semantic model view of one dataset.
func (c *Client) GetDatasetDetail(ctx context.Context, dataset domain.Item) (domain.SemanticModelDetail, error) {
	resource := fmt.Sprintf("dataset %s", dataset.ID)
	path := fmt.Sprintf("admin/datasets/%s", dataset.ID)

	body, _, err := c.get(ctx, resource, c.resourceURL(path, nil))
	if err != nil {
		return domain.SemanticModelDetail{}, err
	}

	var detail api.DatasetDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return domain.SemanticModelDetail{}, fmt.Errorf("failed to decode dataset detail: %w", err)
	}
	return adapters.MapAPIDatasetDetailToDomain(dataset.WorkspaceID, detail), nil
}
