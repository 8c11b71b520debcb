package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
	"github.com/de-tools/fabric-migration-atlas/pkg/store/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct{ mock.Mock }

func (m *mockGateway) ListCapacities(ctx context.Context) ([]domain.Capacity, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Capacity), args.Bool(1), args.Error(2)
}

func (m *mockGateway) ListWorkspaces(ctx context.Context) ([]domain.Workspace, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Workspace), args.Bool(1), args.Error(2)
}

func (m *mockGateway) ListItems(ctx context.Context, workspaceID string, kind domain.ItemKind) ([]domain.Item, bool, error) {
	args := m.Called(ctx, workspaceID, kind)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Item), args.Bool(1), args.Error(2)
}

func (m *mockGateway) GetDatasetDetail(ctx context.Context, dataset domain.Item) (domain.SemanticModelDetail, error) {
	args := m.Called(ctx, dataset)
	return args.Get(0).(domain.SemanticModelDetail), args.Error(1)
}

func activeWorkspace(id, name string) domain.Workspace {
	return domain.Workspace{ID: id, Name: name, State: domain.WorkspaceStateActive}
}

func item(id, workspaceID string, kind domain.ItemKind) domain.Item {
	return domain.Item{ID: id, Name: id, WorkspaceID: workspaceID, Kind: kind}
}

func emptyKinds(gw *mockGateway, workspaceID string, kinds ...domain.ItemKind) {
	for _, kind := range kinds {
		gw.On("ListItems", mock.Anything, workspaceID, kind).Return([]domain.Item{}, true, nil)
	}
}

func TestDiscover_InjectsSharedSentinelOnce(t *testing.T) {
	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).Return([]domain.Capacity{{ID: "cap-1", SKU: "P1"}}, true, nil)
	gw.On("ListWorkspaces", mock.Anything).Return([]domain.Workspace{}, true, nil)

	snapshot, err := NewExplorer(gw, DefaultSettings()).Discover(context.Background())
	require.NoError(t, err)

	shared := 0
	for _, c := range snapshot.Capacities {
		if c.IsShared() {
			shared++
		}
	}
	assert.Equal(t, 1, shared)
	assert.Len(t, snapshot.Capacities, 2)
	gw.AssertExpectations(t)
}

func TestDiscover_SentinelNotDuplicated(t *testing.T) {
	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).
		Return([]domain.Capacity{domain.NewSharedCapacity(), {ID: "cap-1", SKU: "F64"}}, true, nil)
	gw.On("ListWorkspaces", mock.Anything).Return([]domain.Workspace{}, true, nil)

	snapshot, err := NewExplorer(gw, DefaultSettings()).Discover(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Capacities, 2)
}

func TestDiscover_CapacityListingFailureIsFatal(t *testing.T) {
	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).Return(nil, false, errors.New("throttled out"))

	_, err := NewExplorer(gw, DefaultSettings()).Discover(context.Background())

	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "capacity listing", fatal.Stage)
	gw.AssertNotCalled(t, "ListWorkspaces", mock.Anything)
}

func TestDiscover_WorkspaceListingFailureIsFatal(t *testing.T) {
	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).Return([]domain.Capacity{}, true, nil)
	gw.On("ListWorkspaces", mock.Anything).Return(nil, false, errors.New("boom"))

	_, err := NewExplorer(gw, DefaultSettings()).Discover(context.Background())

	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "workspace listing", fatal.Stage)
}

func TestDiscover_DatasetNotFoundSkipsWholeWorkspace(t *testing.T) {
	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).Return([]domain.Capacity{}, true, nil)
	gw.On("ListWorkspaces", mock.Anything).
		Return([]domain.Workspace{activeWorkspace("ws-1", "Broken")}, true, nil)
	gw.On("ListItems", mock.Anything, "ws-1", domain.ItemKindDataset).
		Return(nil, false, &admin.NotFoundError{Resource: "datasets of workspace ws-1"})

	snapshot, err := NewExplorer(gw, DefaultSettings()).Discover(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.SkippedWorkspaces, 1)
	assert.Equal(t, "ws-1", snapshot.SkippedWorkspaces[0].WorkspaceID)
	assert.NotEmpty(t, snapshot.SkippedWorkspaces[0].Reason)
	assert.Empty(t, snapshot.Items)

	gw.AssertNotCalled(t, "ListItems", mock.Anything, "ws-1", domain.ItemKindReport)
	gw.AssertNotCalled(t, "ListItems", mock.Anything, "ws-1", domain.ItemKindDashboard)
	gw.AssertNotCalled(t, "ListItems", mock.Anything, "ws-1", domain.ItemKindDataflow)
}

func TestDiscover_NonDatasetFailureOnlyLosesThatKind(t *testing.T) {
	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).Return([]domain.Capacity{}, true, nil)
	gw.On("ListWorkspaces", mock.Anything).
		Return([]domain.Workspace{activeWorkspace("ws-1", "Mostly fine")}, true, nil)
	gw.On("ListItems", mock.Anything, "ws-1", domain.ItemKindDataset).
		Return([]domain.Item{}, true, nil)
	gw.On("ListItems", mock.Anything, "ws-1", domain.ItemKindReport).
		Return(nil, false, &admin.TransientError{Resource: "reports of workspace ws-1", Status: 500, Attempts: 4})
	gw.On("ListItems", mock.Anything, "ws-1", domain.ItemKindDashboard).
		Return([]domain.Item{item("dash-1", "ws-1", domain.ItemKindDashboard)}, true, nil)
	gw.On("ListItems", mock.Anything, "ws-1", domain.ItemKindDataflow).
		Return([]domain.Item{}, true, nil)

	snapshot, err := NewExplorer(gw, DefaultSettings()).Discover(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snapshot.SkippedWorkspaces, "a non-dataset failure must not skip the workspace")
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "dash-1", snapshot.Items[0].ID)
}

func TestDiscover_SiblingWorkspacesUnaffectedBySkip(t *testing.T) {
	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).Return([]domain.Capacity{}, true, nil)
	gw.On("ListWorkspaces", mock.Anything).
		Return([]domain.Workspace{activeWorkspace("ws-1", "Broken"), activeWorkspace("ws-2", "Healthy")}, true, nil)
	gw.On("ListItems", mock.Anything, "ws-1", domain.ItemKindDataset).
		Return(nil, false, &admin.NotFoundError{Resource: "datasets of workspace ws-1"})
	gw.On("ListItems", mock.Anything, "ws-2", domain.ItemKindDataset).
		Return([]domain.Item{item("ds-1", "ws-2", domain.ItemKindDataset)}, true, nil)
	emptyKinds(gw, "ws-2", domain.ItemKindReport, domain.ItemKindDashboard, domain.ItemKindDataflow)
	gw.On("GetDatasetDetail", mock.Anything, mock.Anything).
		Return(domain.SemanticModelDetail{DatasetID: "ds-1", WorkspaceID: "ws-2"}, nil)

	snapshot, err := NewExplorer(gw, DefaultSettings()).Discover(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.SkippedWorkspaces, 1)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "ws-2", snapshot.Items[0].WorkspaceID)
	require.Len(t, snapshot.ResolvedModels, 1)
}

func TestDiscover_ItemOrderIsWorkspaceTimesKind(t *testing.T) {
	workspaces := []domain.Workspace{activeWorkspace("ws-1", "First"), activeWorkspace("ws-2", "Second")}

	gw := new(mockGateway)
	gw.On("ListCapacities", mock.Anything).Return([]domain.Capacity{}, true, nil)
	gw.On("ListWorkspaces", mock.Anything).Return(workspaces, true, nil)
	for _, ws := range workspaces {
		gw.On("ListItems", mock.Anything, ws.ID, domain.ItemKindDataset).
			Return([]domain.Item{item(ws.ID+"-ds", ws.ID, domain.ItemKindDataset)}, true, nil)
		gw.On("ListItems", mock.Anything, ws.ID, domain.ItemKindReport).
			Return([]domain.Item{item(ws.ID+"-rep", ws.ID, domain.ItemKindReport)}, true, nil)
		emptyKinds(gw, ws.ID, domain.ItemKindDashboard, domain.ItemKindDataflow)
	}
	gw.On("GetDatasetDetail", mock.Anything, mock.Anything).
		Return(domain.SemanticModelDetail{}, nil)

	// Concurrency above 1: slot-indexed accumulation keeps the order stable.
	snapshot, err := NewExplorer(gw, Settings{Concurrency: 4}).Discover(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, it := range snapshot.Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"ws-1-ds", "ws-1-rep", "ws-2-ds", "ws-2-rep"}, ids)
}

func TestResolveDetails_EveryDatasetResolvedOrSkipped(t *testing.T) {
	datasets := []domain.Item{
		item("ds-1", "ws-1", domain.ItemKindDataset),
		item("ds-2", "ws-1", domain.ItemKindDataset),
		item("ds-3", "ws-2", domain.ItemKindDataset),
	}

	gw := new(mockGateway)
	gw.On("GetDatasetDetail", mock.Anything, datasets[0]).
		Return(domain.SemanticModelDetail{DatasetID: "ds-1"}, nil)
	gw.On("GetDatasetDetail", mock.Anything, datasets[1]).
		Return(domain.SemanticModelDetail{}, &admin.TransientError{Resource: "dataset ds-2", Status: 500, Attempts: 4})
	gw.On("GetDatasetDetail", mock.Anything, datasets[2]).
		Return(domain.SemanticModelDetail{}, &admin.NotFoundError{Resource: "dataset ds-3"})

	e := &explorer{gateway: gw, settings: DefaultSettings()}
	resolved, skipped := e.resolveDetails(context.Background(), datasets)

	assert.Equal(t, len(datasets), len(resolved)+len(skipped))
	require.Len(t, resolved, 1)
	require.Len(t, skipped, 2)
	assert.Equal(t, "ds-2", skipped[0].DatasetID)
	assert.Equal(t, "ds-3", skipped[1].DatasetID)
	for _, skip := range skipped {
		assert.NotEmpty(t, skip.Reason)
	}
}

func TestResolveDetails_NoDatasets(t *testing.T) {
	gw := new(mockGateway)
	e := &explorer{gateway: gw, settings: DefaultSettings()}

	resolved, skipped := e.resolveDetails(context.Background(), nil)
	assert.Empty(t, resolved)
	assert.Empty(t, skipped)
	gw.AssertNotCalled(t, "GetDatasetDetail", mock.Anything, mock.Anything)
}
