// Package cost estimates monthly spend for orphaned resources from a static
// pricing table. Estimates are approximations of pay-as-you-go US pricing;
// actual costs vary by region and tier. The table deliberately sits behind
// the Estimator interface so a live pricing backend can replace it without
// touching the classifier or the rendering layer.
package cost

import (
	"math"
	"strings"

	"github.com/elC0mpa/az-prune/model"
)

const currency = "USD/month"

// Per-GB monthly rates by disk SKU family.
const (
	rateStandardHDDGB = 0.05
	rateStandardSSDGB = 0.075
	ratePremiumGB     = 0.15
)

// Public IP monthly rates by SKU.
const (
	ratePublicIPBasic    = 3.65
	ratePublicIPStandard = 4.00
)

// App Service Plan monthly rates by SKU size, per instance.
var appPlanRates = map[string]float64{
	"f1": 0, "free": 0,
	"d1": 10, "shared": 10,
	"b1": 55, "b2": 109, "b3": 219,
	"s1": 73, "s2": 146, "s3": 292,
	"p1": 146, "p2": 292, "p3": 584,
	"p1v2": 88, "p2v2": 175, "p3v2": 350,
	"p1v3": 104, "p2v3": 208, "p3v3": 416,
}

const defaultAppPlanRate = 73.0 // S1

func NewService() *service {
	return &service{}
}

// Estimate implements service.Estimator. It never fails: unrecognized or
// missing attributes cost out as zero or the documented default.
func (s *service) Estimate(category model.Category, record model.Resource) model.CostEstimate {
	switch category {
	case model.CategoryOrphanedNIC:
		return s.estimateNIC(record)
	case model.CategoryUnattachedDisk:
		return s.estimateDisk(record)
	case model.CategoryUnusedPublicIP:
		return s.estimatePublicIP(record)
	case model.CategoryIdleAppPlan:
		return s.estimateAppPlan(record)
	case model.CategoryDetachedNSG:
		return model.CostEstimate{Monthly: 0, Currency: currency}
	case model.CategoryStaleSnapshot:
		return s.estimateSnapshot(record)
	}
	return model.CostEstimate{Monthly: 0, Currency: currency}
}

// NICs are free, but one that still holds a public IP keeps that IP billed.
// The held IP's SKU is not in the NIC projection, so the Standard rate is
// assumed.
func (s *service) estimateNIC(record model.Resource) model.CostEstimate {
	estimate := model.CostEstimate{Monthly: 0, Currency: currency}
	if nicHoldsPublicIP(record) {
		estimate.Caveat = "NIC is free but holds a billed Public IP (~$4.00/mo)"
	}
	return estimate
}

func (s *service) estimateDisk(record model.Resource) model.CostEstimate {
	return model.CostEstimate{
		Monthly:  round2(record.PropFloat("diskSizeGB") * diskRate(record.PropString("skuName"))),
		Currency: currency,
	}
}

func (s *service) estimatePublicIP(record model.Resource) model.CostEstimate {
	rate := ratePublicIPBasic
	if strings.EqualFold(record.PropString("skuName"), "Standard") {
		rate = ratePublicIPStandard
	}
	return model.CostEstimate{Monthly: rate, Currency: currency}
}

func (s *service) estimateAppPlan(record model.Resource) model.CostEstimate {
	size := record.PropString("size")
	if size == "" {
		size = record.PropString("skuName")
	}
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(size))

	rate, ok := appPlanRates[key]
	estimate := model.CostEstimate{Currency: currency}
	if !ok {
		rate = defaultAppPlanRate
		estimate.Caveat = "unknown plan SKU, assuming S1 rate"
	}

	capacity := record.PropFloat("capacity")
	if capacity < 1 {
		capacity = 1
	}
	estimate.Monthly = round2(rate * capacity)
	return estimate
}

// Snapshots bill as standard HDD storage regardless of the source disk tier.
func (s *service) estimateSnapshot(record model.Resource) model.CostEstimate {
	return model.CostEstimate{
		Monthly:  round2(record.PropFloat("diskSizeGB") * rateStandardHDDGB),
		Currency: currency,
	}
}

func diskRate(sku string) float64 {
	lower := strings.ToLower(sku)
	switch {
	case strings.Contains(lower, "premium"):
		return ratePremiumGB
	case strings.Contains(lower, "standardssd"):
		return rateStandardSSDGB
	default:
		return rateStandardHDDGB
	}
}

func nicHoldsPublicIP(record model.Resource) bool {
	configs, ok := record.Properties["ipConfigurations"].([]any)
	if !ok {
		return false
	}
	for _, c := range configs {
		config, ok := c.(map[string]any)
		if !ok {
			continue
		}
		props, ok := config["properties"].(map[string]any)
		if !ok {
			continue
		}
		if ip, present := props["publicIPAddress"]; present && ip != nil {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
