package response

import (
	"sort"

	"github.com/elC0mpa/az-prune/model"
	"github.com/elC0mpa/az-prune/service/portal"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		SubscriptionID:   info.SubscriptionID,
		SubscriptionName: info.SubscriptionName,
		TenantID:         info.TenantID,
	}
}

// ConvertSubscriptions converts the identity service's subscription list
func ConvertSubscriptions(subscriptions []model.AccountInfo) []AzureSubscription {
	result := make([]AzureSubscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		result = append(result, AzureSubscription{
			SubscriptionID: sub.SubscriptionID,
			DisplayName:    sub.SubscriptionName,
			TenantID:       sub.TenantID,
		})
	}
	return result
}

// ConvertScanResult converts a model.ScanResult into a ScanSummary with
// portal deep links resolved per resource.
func ConvertScanResult(result model.ScanResult) *ScanSummary {
	resources := make([]OrphanedResource, 0, len(result.Resources))
	for _, r := range result.Resources {
		converted := OrphanedResource{
			ID:            r.ID,
			Name:          r.Name,
			Type:          r.Type,
			ResourceGroup: r.ResourceGroup,
			Location:      r.Location,
			Category:      string(r.Category),
			MonthlyCost:   r.Cost.Monthly,
			Currency:      r.Cost.Currency,
			Caveat:        r.Cost.Caveat,
			Details:       r.Details,
		}
		if url, err := portal.BuildPortalURL(r.ID, result.Account.TenantID); err == nil {
			converted.PortalURL = url
		}
		resources = append(resources, converted)
	}

	sort.Slice(resources, func(i, j int) bool {
		return resources[i].MonthlyCost > resources[j].MonthlyCost
	})

	return &ScanSummary{
		Subscription:     *ConvertAccountInfo(&result.Account),
		ResourceCount:    len(resources),
		TotalMonthlyCost: result.TotalMonthlyCost(),
		Currency:         "USD/month",
		Resources:        resources,
	}
}

// ConvertCostInfo converts model.CostInfo to response.CostInfo
func ConvertCostInfo(info *model.CostInfo) *CostInfo {
	if info == nil {
		return nil
	}

	var services []ServiceCost
	var total float64
	var currency string

	for name, cost := range info.CostGroup {
		services = append(services, ServiceCost{
			Name:   name,
			Amount: cost.Amount,
			Unit:   cost.Unit,
		})
		total += cost.Amount
		if currency == "" {
			currency = cost.Unit
		}
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].Amount > services[j].Amount
	})

	if currency == "" {
		currency = "USD"
	}

	return &CostInfo{
		StartDate: info.Start,
		EndDate:   info.End,
		Services:  services,
		Total:     total,
		Currency:  currency,
	}
}
