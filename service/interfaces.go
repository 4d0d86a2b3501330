package service

import (
	"context"

	"github.com/elC0mpa/az-prune/model"
)

// IdentityService provides the authenticated subscription identity
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// RecordService returns raw resource records for one orphan category.
// Implemented by the Resource Graph client and by the ARM fallback enumerator.
type RecordService interface {
	GetRecords(ctx context.Context, category model.Category) ([]model.Resource, error)
}

// ClassifierService decides orphan-category membership for a raw record.
// Pure: no network, no shared state, never errors.
type ClassifierService interface {
	Classify(record model.Resource) model.Category
}

// Estimator maps a classified resource to an approximate monthly cost.
// Swappable so a live pricing backend can replace the static table.
type Estimator interface {
	Estimate(category model.Category, record model.Resource) model.CostEstimate
}

// CostService provides actual billed cost data for context next to estimates
type CostService interface {
	GetCurrentMonthCostsByService(ctx context.Context) (*model.CostInfo, error)
	GetCurrentMonthTotalCosts(ctx context.Context) (*string, error)
}

// ExportService writes a result set to disk
type ExportService interface {
	ExportExcel(rows []model.OrphanedResource, tenantID, destinationPath string) error
	ExportCSV(rows []model.OrphanedResource, tenantID, destinationPath string) error
}
