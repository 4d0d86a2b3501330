package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elC0mpa/az-prune/model"
	"github.com/elC0mpa/az-prune/service"
	azurearm "github.com/elC0mpa/az-prune/service/azure/arm"
	azuregraph "github.com/elC0mpa/az-prune/service/azure/graph"
	"github.com/elC0mpa/az-prune/service/detector"
	"github.com/elC0mpa/az-prune/service/export"
	"github.com/elC0mpa/az-prune/service/grid"
	"github.com/elC0mpa/az-prune/utils"
)

func NewService(
	identityService service.IdentityService,
	graphService service.RecordService,
	fallbackService service.RecordService,
	classifierService service.ClassifierService,
	estimator service.Estimator,
	costService service.CostService,
	exportService service.ExportService,
	gridService grid.GridService,
	log *logrus.Logger,
) *orchestratorService {
	return &orchestratorService{
		identityService:   identityService,
		graphService:      graphService,
		fallbackService:   fallbackService,
		classifierService: classifierService,
		estimator:         estimator,
		costService:       costService,
		exportService:     exportService,
		gridService:       gridService,
		log:               log,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	ctx := context.Background()

	account, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"subscription": account.SubscriptionName,
		"tenant":       account.TenantID,
	}).Info("authenticated")

	result, err := s.Scan(ctx, *account, flags.All)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	rows := s.gridService.SortByCost(!flags.SortAscending)
	if flags.Filter != "" {
		rows = grid.FilterRows(rows, flags.Filter)
	}

	utils.DrawOrphanTable(*account, rows)
	if len(rows) > 1 {
		utils.DrawCategoryChart(rows)
	}

	if flags.Costs {
		if err := s.showActualCosts(ctx); err != nil {
			// Billing data is context, not the scan result; degrade politely.
			s.log.WithError(err).Warn("could not retrieve billed costs")
		}
	}

	if flags.Export || flags.CSV {
		if err := s.exportResult(result, flags); err != nil {
			return err
		}
	}

	return nil
}

// Scan runs every enabled detector, classifies and cost-annotates the
// records, and installs the finished result set in the grid. A single failing
// detector logs a warning and the scan continues; the scan as a whole fails
// only when no detector produced an answer.
func (s *orchestratorService) Scan(ctx context.Context, account model.AccountInfo, all bool) (model.ScanResult, error) {
	scanCtx, err := s.gridService.BeginScan(ctx)
	if err != nil {
		return model.ScanResult{}, err
	}

	detectors := detector.Enabled(all)
	var resources []model.OrphanedResource
	var failures int
	var lastErr error

	for _, d := range detectors {
		if scanCtx.Err() != nil {
			s.gridService.Abort()
			return model.ScanResult{}, scanCtx.Err()
		}

		s.log.WithField("detector", d.DisplayName).Info("scanning")

		records, err := s.getRecords(scanCtx, d.Category)
		if err != nil {
			s.log.WithError(err).WithField("detector", d.DisplayName).Warn("detector failed")
			failures++
			lastErr = err
			continue
		}

		found := 0
		for _, record := range records {
			category := s.classifierService.Classify(record)
			if category != d.Category {
				continue
			}
			estimate := s.estimator.Estimate(category, record)
			resources = append(resources, model.OrphanedResource{
				Resource: record,
				Category: category,
				Cost:     estimate,
				Details:  describe(category, record, estimate, time.Now()),
			})
			found++
		}
		s.log.WithFields(logrus.Fields{"detector": d.DisplayName, "found": found}).Info("detector complete")
	}

	if failures == len(detectors) {
		s.gridService.Abort()
		return model.ScanResult{}, fmt.Errorf("scan failed: %w", lastErr)
	}

	result := model.ScanResult{
		Account:   account,
		Resources: resources,
		ScannedAt: time.Now(),
	}
	s.gridService.Complete(result)
	s.log.WithField("total", len(resources)).Info("scan complete")
	return result, nil
}

// getRecords prefers Resource Graph and falls back to direct ARM enumeration
// when the graph endpoint is unreachable.
func (s *orchestratorService) getRecords(ctx context.Context, category model.Category) ([]model.Resource, error) {
	records, err := s.graphService.GetRecords(ctx, category)
	if err == nil {
		return records, nil
	}

	var queryErr *azuregraph.QueryError
	if !errors.As(err, &queryErr) || s.fallbackService == nil {
		return nil, err
	}

	s.log.WithField("category", category).Warn("resource graph unavailable, using ARM fallback")
	records, fallbackErr := s.fallbackService.GetRecords(ctx, category)
	if fallbackErr != nil {
		var unsupported *azurearm.UnsupportedCategoryError
		if errors.As(fallbackErr, &unsupported) {
			return nil, err
		}
		return nil, fallbackErr
	}
	return records, nil
}

func (s *orchestratorService) showActualCosts(ctx context.Context) error {
	total, err := s.costService.GetCurrentMonthTotalCosts(ctx)
	if err != nil {
		return err
	}
	byService, err := s.costService.GetCurrentMonthCostsByService(ctx)
	if err != nil {
		return err
	}
	utils.DrawActualCosts(*total, byService)
	return nil
}

func (s *orchestratorService) exportResult(result model.ScanResult, flags model.Flags) error {
	path := flags.Output
	if path == "" {
		path = export.DefaultFilename(time.Now())
		if flags.CSV && !flags.Export {
			path = path[:len(path)-len("xlsx")] + "csv"
		}
	}
	path = export.DisambiguatePath(path)

	var err error
	if flags.CSV && !flags.Export {
		err = s.exportService.ExportCSV(result.Resources, result.Account.TenantID, path)
	} else {
		err = s.exportService.ExportExcel(result.Resources, result.Account.TenantID, path)
	}
	if err != nil {
		return err
	}

	s.log.WithField("path", path).Info("report written")
	fmt.Printf("\nReport written to %s\n", path)
	return nil
}
