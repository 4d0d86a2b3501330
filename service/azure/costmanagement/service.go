package azurecostmanagement

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"

	"github.com/elC0mpa/az-prune/model"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armcostmanagement.NewQueryClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost management client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetCurrentMonthCostsByService implements service.CostService. Billed
// month-to-date spend, grouped by Azure service name — the "what you are
// actually paying" context next to the orphan estimates.
func (s *service) GetCurrentMonthCostsByService(ctx context.Context) (*model.CostInfo, error) {
	endDate := time.Now()
	startDate := firstDayOfMonth(endDate)

	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(endDate),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr("ServiceName"),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, s.scope(), queryDefinition, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}

	costGroups := make(map[string]model.ServiceCost)

	if resp.Properties != nil && resp.Properties.Rows != nil {
		for _, row := range resp.Properties.Rows {
			if len(row) < 2 {
				continue
			}
			// Row format: [cost, serviceName, ...]
			amount, ok := row[0].(float64)
			if !ok {
				continue
			}
			serviceName, ok := row[1].(string)
			if !ok {
				continue
			}
			if amount <= 0 {
				continue
			}

			// Daily granularity: aggregate the days per service.
			existing := costGroups[serviceName]
			costGroups[serviceName] = model.ServiceCost{
				Name:   serviceName,
				Amount: existing.Amount + amount,
				Unit:   "USD",
			}
		}
	}

	return &model.CostInfo{
		Start:     startDate.Format("2006-01-02"),
		End:       endDate.Format("2006-01-02"),
		CostGroup: costGroups,
	}, nil
}

// GetCurrentMonthTotalCosts implements service.CostService
func (s *service) GetCurrentMonthTotalCosts(ctx context.Context) (*string, error) {
	endDate := time.Now()
	startDate := firstDayOfMonth(endDate)

	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(endDate),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, s.scope(), queryDefinition, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query total costs: %w", err)
	}

	var totalCost float64
	if resp.Properties != nil && resp.Properties.Rows != nil {
		for _, row := range resp.Properties.Rows {
			if len(row) >= 1 {
				if amount, ok := row[0].(float64); ok {
					totalCost += amount
				}
			}
		}
	}

	result := fmt.Sprintf("%.2f USD", totalCost)
	return &result, nil
}

func (s *service) scope() string {
	return fmt.Sprintf("/subscriptions/%s", s.subscriptionID)
}

func firstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
