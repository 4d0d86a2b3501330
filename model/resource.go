package model

import "time"

// Category identifies which orphan class a resource was filed under.
type Category string

const (
	CategoryNone           Category = ""
	CategoryOrphanedNIC    Category = "orphaned-nic"
	CategoryUnattachedDisk Category = "unattached-disk"
	CategoryUnusedPublicIP Category = "unused-public-ip"
	CategoryIdleAppPlan    Category = "idle-app-service-plan"
	CategoryDetachedNSG    Category = "detached-nsg"
	CategoryStaleSnapshot  Category = "stale-snapshot"
)

// Azure resource type strings as reported by Resource Graph (lowercase form).
const (
	TypeNetworkInterface = "microsoft.network/networkinterfaces"
	TypeManagedDisk      = "microsoft.compute/disks"
	TypePublicIP         = "microsoft.network/publicipaddresses"
	TypeAppServicePlan   = "microsoft.web/serverfarms"
	TypeNSG              = "microsoft.network/networksecuritygroups"
	TypeSnapshot         = "microsoft.compute/snapshots"
)

// DisplayName returns the human readable name used in tables and exports.
func (c Category) DisplayName() string {
	switch c {
	case CategoryOrphanedNIC:
		return "Network Interface"
	case CategoryUnattachedDisk:
		return "Managed Disk"
	case CategoryUnusedPublicIP:
		return "Public IP"
	case CategoryIdleAppPlan:
		return "App Service Plan"
	case CategoryDetachedNSG:
		return "NSG"
	case CategoryStaleSnapshot:
		return "Snapshot"
	}
	return string(c)
}

// Resource is a raw record as returned by the Resource Graph query surface
// or the ARM fallback enumerator. Properties carries the type-specific
// projection fields (attachment state, SKU, sizing) as a loose bag, the way
// Resource Graph returns them.
type Resource struct {
	ID             string
	Name           string
	Type           string
	ResourceGroup  string
	Location       string
	SubscriptionID string
	Properties     map[string]any
	Tags           map[string]string
}

// PropString returns a string property, or "" when absent or of another type.
func (r Resource) PropString(key string) string {
	if v, ok := r.Properties[key].(string); ok {
		return v
	}
	return ""
}

// PropFloat returns a numeric property. Resource Graph decodes JSON numbers
// as float64.
func (r Resource) PropFloat(key string) float64 {
	switch v := r.Properties[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// PropBool returns a boolean property, false when absent.
func (r Resource) PropBool(key string) bool {
	if v, ok := r.Properties[key].(bool); ok {
		return v
	}
	return false
}

// PropTime parses an RFC3339 timestamp property. The zero time is returned
// when the property is absent or malformed.
func (r Resource) PropTime(key string) time.Time {
	s := r.PropString(key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PropEmpty reports whether a property is missing, nil, or an empty
// string/array/object. Resource Graph represents detached references this way.
func (r Resource) PropEmpty(key string) bool {
	v, ok := r.Properties[key]
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// OrphanedResource is a classified, cost-annotated resource. Immutable once
// built: the grid replaces whole result sets, it never mutates rows.
type OrphanedResource struct {
	Resource
	Category Category
	Cost     CostEstimate
	Details  string
}

// AccountInfo identifies the authenticated subscription.
type AccountInfo struct {
	SubscriptionID   string
	SubscriptionName string
	TenantID         string
}

// ScanResult is one completed scan over a subscription.
type ScanResult struct {
	Account   AccountInfo
	Resources []OrphanedResource
	ScannedAt time.Time
}

// TotalMonthlyCost sums the estimated monthly cost across the result set.
func (s ScanResult) TotalMonthlyCost() float64 {
	var total float64
	for _, r := range s.Resources {
		total += r.Cost.Monthly
	}
	return total
}
