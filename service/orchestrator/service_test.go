package orchestrator

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/az-prune/model"
	azuregraph "github.com/elC0mpa/az-prune/service/azure/graph"
	"github.com/elC0mpa/az-prune/service/classifier"
	"github.com/elC0mpa/az-prune/service/cost"
	"github.com/elC0mpa/az-prune/service/grid"
)

type fakeRecordService struct {
	records map[model.Category][]model.Resource
	errs    map[model.Category]error
	calls   []model.Category
}

func (f *fakeRecordService) GetRecords(ctx context.Context, category model.Category) ([]model.Resource, error) {
	f.calls = append(f.calls, category)
	if err := f.errs[category]; err != nil {
		return nil, err
	}
	return f.records[category], nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAccount() model.AccountInfo {
	return model.AccountInfo{
		SubscriptionID:   "00000000-0000-0000-0000-000000000000",
		SubscriptionName: "test-subscription",
		TenantID:         "11111111-1111-1111-1111-111111111111",
	}
}

func unattachedDisk(name string) model.Resource {
	return model.Resource{
		ID:            "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/disks/" + name,
		Name:          name,
		Type:          "microsoft.compute/disks",
		ResourceGroup: "rg",
		Location:      "eastus",
		Properties: map[string]any{
			"diskState":  "Unattached",
			"diskSizeGB": float64(128),
			"skuName":    "Standard_LRS",
		},
	}
}

func attachedDisk(name string) model.Resource {
	r := unattachedDisk(name)
	r.Properties["managedBy"] = "/subscriptions/sub/providers/Microsoft.Compute/virtualMachines/vm1"
	r.Properties["diskState"] = "Attached"
	return r
}

func TestScanClassifiesAndEstimates(t *testing.T) {
	graph := &fakeRecordService{
		records: map[model.Category][]model.Resource{
			model.CategoryUnattachedDisk: {unattachedDisk("disk-a"), attachedDisk("disk-b")},
		},
	}

	gridSvc := grid.NewService()
	svc := NewService(nil, graph, nil, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	result, err := svc.Scan(context.Background(), testAccount(), false)
	require.NoError(t, err)

	// Only the genuinely unattached disk survives classification.
	require.Len(t, result.Resources, 1)
	found := result.Resources[0]
	assert.Equal(t, "disk-a", found.Name)
	assert.Equal(t, model.CategoryUnattachedDisk, found.Category)
	assert.Equal(t, 6.40, found.Cost.Monthly)
	assert.NotEmpty(t, found.Details)

	stored, ok := gridSvc.Result()
	require.True(t, ok)
	assert.Len(t, stored.Resources, 1)
}

func TestScanToleratesSingleDetectorFailure(t *testing.T) {
	graph := &fakeRecordService{
		records: map[model.Category][]model.Resource{
			model.CategoryUnattachedDisk: {unattachedDisk("disk-a")},
		},
		errs: map[model.Category]error{
			model.CategoryUnusedPublicIP: errors.New("throttled"),
		},
	}

	gridSvc := grid.NewService()
	svc := NewService(nil, graph, nil, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	result, err := svc.Scan(context.Background(), testAccount(), false)
	require.NoError(t, err)
	require.Len(t, result.Resources, 1)
	assert.Equal(t, "disk-a", result.Resources[0].Name)
}

func TestScanFailsWhenEveryDetectorFails(t *testing.T) {
	boom := errors.New("resource provider unavailable")
	graph := &fakeRecordService{
		errs: map[model.Category]error{
			model.CategoryUnattachedDisk: boom,
			model.CategoryUnusedPublicIP: boom,
			model.CategoryOrphanedNIC:    boom,
		},
	}

	gridSvc := grid.NewService()
	svc := NewService(nil, graph, nil, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	_, err := svc.Scan(context.Background(), testAccount(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// A failed scan must not install a result set.
	_, ok := gridSvc.Result()
	assert.False(t, ok)

	// And must release the scan slot.
	assert.False(t, gridSvc.Scanning())
}

func TestScanFallsBackToARMOnQueryError(t *testing.T) {
	graphDown := &azuregraph.QueryError{Err: errors.New("connection refused")}
	graph := &fakeRecordService{
		errs: map[model.Category]error{
			model.CategoryUnattachedDisk: graphDown,
			model.CategoryUnusedPublicIP: graphDown,
			model.CategoryOrphanedNIC:    graphDown,
		},
	}
	fallback := &fakeRecordService{
		records: map[model.Category][]model.Resource{
			model.CategoryUnattachedDisk: {unattachedDisk("disk-a")},
		},
	}

	gridSvc := grid.NewService()
	svc := NewService(nil, graph, fallback, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	result, err := svc.Scan(context.Background(), testAccount(), false)
	require.NoError(t, err)
	require.Len(t, result.Resources, 1)
	assert.Equal(t, "disk-a", result.Resources[0].Name)
	assert.Contains(t, fallback.calls, model.CategoryUnattachedDisk)
}

func TestScanDoesNotFallBackOnOtherErrors(t *testing.T) {
	graph := &fakeRecordService{
		records: map[model.Category][]model.Resource{
			model.CategoryUnattachedDisk: {unattachedDisk("disk-a")},
			model.CategoryUnusedPublicIP: nil,
		},
		errs: map[model.Category]error{
			model.CategoryOrphanedNIC: errors.New("forbidden"),
		},
	}
	fallback := &fakeRecordService{}

	gridSvc := grid.NewService()
	svc := NewService(nil, graph, fallback, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	_, err := svc.Scan(context.Background(), testAccount(), false)
	require.NoError(t, err)
	assert.Empty(t, fallback.calls)
}

func TestScanRejectsConcurrentScan(t *testing.T) {
	graph := &fakeRecordService{}
	gridSvc := grid.NewService()
	svc := NewService(nil, graph, nil, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	_, err := gridSvc.BeginScan(context.Background())
	require.NoError(t, err)

	_, err = svc.Scan(context.Background(), testAccount(), false)
	assert.ErrorIs(t, err, grid.ErrScanInProgress)
}

func TestScanHonorsCancellation(t *testing.T) {
	graph := &fakeRecordService{
		records: map[model.Category][]model.Resource{
			model.CategoryUnattachedDisk: {unattachedDisk("disk-a")},
		},
	}

	gridSvc := grid.NewService()
	svc := NewService(nil, graph, nil, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Scan(ctx, testAccount(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, ok := gridSvc.Result()
	assert.False(t, ok)
}

func TestAllFlagWidensDetectorSet(t *testing.T) {
	graph := &fakeRecordService{}
	gridSvc := grid.NewService()
	svc := NewService(nil, graph, nil, classifier.NewService(), cost.NewService(), nil, nil, gridSvc, quietLogger())

	_, err := svc.Scan(context.Background(), testAccount(), true)
	require.NoError(t, err)
	assert.Len(t, graph.calls, 6)

	graph.calls = nil
	_, err = svc.Scan(context.Background(), testAccount(), false)
	require.NoError(t, err)
	assert.Len(t, graph.calls, 3)
}
