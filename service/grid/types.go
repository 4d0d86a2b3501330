package grid

import (
	"context"
	"sync"

	"github.com/elC0mpa/az-prune/model"
)

type service struct {
	mu        sync.Mutex
	scanning  bool
	cancel    context.CancelFunc
	result    model.ScanResult
	hasResult bool
}

type GridService interface {
	BeginScan(ctx context.Context) (context.Context, error)
	Complete(result model.ScanResult)
	Abort()
	CancelScan()
	Scanning() bool
	Result() (model.ScanResult, bool)
	SortByCost(descending bool) []model.OrphanedResource
	Filter(search string) []model.OrphanedResource
}
