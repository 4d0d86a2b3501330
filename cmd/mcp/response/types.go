package response

// AccountInfo represents Azure subscription identity
type AccountInfo struct {
	SubscriptionID   string `json:"subscription_id"`
	SubscriptionName string `json:"subscription_name"`
	TenantID         string `json:"tenant_id"`
}

// AzureSubscription represents Azure subscription details
type AzureSubscription struct {
	SubscriptionID string `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	TenantID       string `json:"tenant_id"`
}

// OrphanedResource represents a single classified orphan finding
type OrphanedResource struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	ResourceGroup string  `json:"resource_group"`
	Location      string  `json:"location"`
	Category      string  `json:"category"`
	MonthlyCost   float64 `json:"monthly_cost"`
	Currency      string  `json:"currency"`
	Caveat        string  `json:"caveat,omitempty"`
	Details       string  `json:"details,omitempty"`
	PortalURL     string  `json:"portal_url,omitempty"`
}

// ScanSummary aggregates one scan of a subscription
type ScanSummary struct {
	Subscription     AccountInfo        `json:"subscription"`
	ResourceCount    int                `json:"resource_count"`
	TotalMonthlyCost float64            `json:"total_monthly_cost"`
	Currency         string             `json:"currency"`
	Resources        []OrphanedResource `json:"resources"`
}

// ServiceCost represents billed cost for a single service
type ServiceCost struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// CostInfo represents billed cost data for a time period
type CostInfo struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Services  []ServiceCost `json:"services"`
	Total     float64       `json:"total"`
	Currency  string        `json:"currency"`
}

// PortalLink is the deep-link answer for a single resource
type PortalLink struct {
	ResourceID string `json:"resource_id"`
	TenantID   string `json:"tenant_id"`
	URL        string `json:"url"`
}

// ExportResult reports where a generated report landed
type ExportResult struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	ResourceCount int    `json:"resource_count"`
}
