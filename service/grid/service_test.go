package grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/az-prune/model"
)

func row(name, resourceGroup string, monthly float64) model.OrphanedResource {
	return model.OrphanedResource{
		Resource: model.Resource{Name: name, ResourceGroup: resourceGroup},
		Cost:     model.CostEstimate{Monthly: monthly, Currency: "USD/month"},
	}
}

func completedService(rows ...model.OrphanedResource) *service {
	s := NewService()
	if _, err := s.BeginScan(context.Background()); err != nil {
		panic(err)
	}
	s.Complete(model.ScanResult{Resources: rows, ScannedAt: time.Now()})
	return s
}

func TestBeginScanRejectsConcurrentScan(t *testing.T) {
	s := NewService()

	_, err := s.BeginScan(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Scanning())

	_, err = s.BeginScan(context.Background())
	assert.ErrorIs(t, err, ErrScanInProgress)

	s.Abort()
	assert.False(t, s.Scanning())

	_, err = s.BeginScan(context.Background())
	assert.NoError(t, err)
}

func TestCancelScanStopsContext(t *testing.T) {
	s := NewService()
	scanCtx, err := s.BeginScan(context.Background())
	require.NoError(t, err)

	s.CancelScan()

	select {
	case <-scanCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("scan context was not cancelled")
	}
}

func TestAbortPreservesPriorResults(t *testing.T) {
	s := completedService(row("disk-a", "rg-prod", 6.40))

	_, err := s.BeginScan(context.Background())
	require.NoError(t, err)
	s.Abort()

	result, ok := s.Result()
	require.True(t, ok)
	require.Len(t, result.Resources, 1)
	assert.Equal(t, "disk-a", result.Resources[0].Name)
}

func TestResultBeforeAnyScan(t *testing.T) {
	_, ok := NewService().Result()
	assert.False(t, ok)
}

func TestSortByCost(t *testing.T) {
	s := completedService(
		row("nic-a", "rg-prod", 0),
		row("disk-a", "rg-prod", 6.40),
		row("ip-a", "rg-dev", 3.65),
	)

	descending := s.SortByCost(true)
	require.Len(t, descending, 3)
	assert.Equal(t, []string{"disk-a", "ip-a", "nic-a"}, names(descending))

	ascending := s.SortByCost(false)
	assert.Equal(t, []string{"nic-a", "ip-a", "disk-a"}, names(ascending))
}

func TestSortDoesNotMutateStoredResults(t *testing.T) {
	s := completedService(
		row("nic-a", "rg-prod", 0),
		row("disk-a", "rg-prod", 6.40),
	)

	s.SortByCost(true)

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, "nic-a", result.Resources[0].Name)
}

func TestFilter(t *testing.T) {
	s := completedService(
		row("disk-dev-01", "rg-prod", 6.40),
		row("disk-prod-01", "rg-prod", 6.40),
		row("ip-a", "rg-DEV", 3.65),
	)

	matched := s.Filter("dev")
	assert.Equal(t, []string{"disk-dev-01", "ip-a"}, names(matched))

	assert.Len(t, s.Filter(""), 3)
	assert.Empty(t, s.Filter("no-such-resource"))
}

func names(rows []model.OrphanedResource) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
