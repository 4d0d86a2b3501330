package orchestrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/elC0mpa/az-prune/model"
)

// describe builds the human-readable detail string shown in the table and
// the Details column of exports.
func describe(category model.Category, record model.Resource, estimate model.CostEstimate, now time.Time) string {
	var parts []string

	switch category {
	case model.CategoryOrphanedNIC:
		if estimate.Caveat != "" {
			parts = append(parts, "Has Public IP")
		} else {
			parts = append(parts, "No Public IP")
		}

	case model.CategoryUnattachedDisk:
		if size := record.PropFloat("diskSizeGB"); size > 0 {
			parts = append(parts, fmt.Sprintf("%.0f GB", size))
		}
		if sku := record.PropString("skuName"); sku != "" {
			parts = append(parts, "SKU: "+sku)
		}
		if age := formatAge(record.PropTime("timeCreated"), now); age != "" {
			parts = append(parts, "Created "+age)
		}

	case model.CategoryUnusedPublicIP:
		if ip := record.PropString("ipAddress"); ip != "" {
			parts = append(parts, "IP: "+ip)
		}
		if sku := record.PropString("skuName"); sku != "" {
			parts = append(parts, "SKU: "+sku)
		}
		if allocation := record.PropString("allocationMethod"); allocation != "" {
			parts = append(parts, allocation)
		}

	case model.CategoryIdleAppPlan:
		kind := strings.ToLower(record.PropString("kind"))
		switch {
		case strings.Contains(kind, "linux"):
			parts = append(parts, "Linux")
		case strings.Contains(kind, "functionapp"):
			parts = append(parts, "Functions")
		case kind != "":
			parts = append(parts, "Windows")
		}
		if sku := record.PropString("skuName"); sku != "" {
			parts = append(parts, "SKU: "+sku)
		}
		if capacity := record.PropFloat("capacity"); capacity > 1 {
			parts = append(parts, fmt.Sprintf("%.0f instances", capacity))
		}
		parts = append(parts, "No apps")

	case model.CategoryDetachedNSG:
		if rules := record.PropFloat("rulesCount"); rules > 0 {
			parts = append(parts, fmt.Sprintf("%.0f custom rules", rules))
		} else {
			parts = append(parts, "No custom rules")
		}
		parts = append(parts, "Not attached")

	case model.CategoryStaleSnapshot:
		if !record.PropBool("sourceDiskExists") {
			parts = append(parts, "Source disk deleted")
		}
		if size := record.PropFloat("diskSizeGB"); size > 0 {
			parts = append(parts, fmt.Sprintf("%.0f GB", size))
		}
		if age := formatAge(record.PropTime("timeCreated"), now); age != "" {
			parts = append(parts, "Created "+age)
		}
	}

	if estimate.Caveat != "" {
		parts = append(parts, estimate.Caveat)
	}

	return strings.Join(parts, " | ")
}

func formatAge(created time.Time, now time.Time) string {
	if created.IsZero() {
		return ""
	}

	days := int(now.Sub(created).Hours() / 24)
	switch {
	case days < 1:
		return "today"
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		years := days / 365
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}
