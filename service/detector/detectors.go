// Package detector holds the Resource Graph query catalog. Each query
// pre-filters server side for efficiency, but also projects the predicate
// fields so the classifier can re-verify every record it receives — the ARM
// fallback path produces unfiltered records and relies on that entirely.
package detector

import "github.com/elC0mpa/az-prune/model"

// Detector pairs an orphan category with its Resource Graph query.
type Detector struct {
	Category    model.Category
	DisplayName string
	Query       string

	// Mandatory detectors run on every scan; the rest need -all.
	Mandatory bool
}

const queryOrphanedNICs = `
Resources
| where type == 'microsoft.network/networkinterfaces'
| where isnull(properties.virtualMachine)
| project id, name, type, resourceGroup, location, subscriptionId,
          virtualMachine = properties.virtualMachine,
          ipConfigurations = properties.ipConfigurations,
          tags
`

const queryUnattachedDisks = `
Resources
| where type == 'microsoft.compute/disks'
| where isnull(properties.managedBy)
| where properties.diskState != 'ActiveSAS'
| project id, name, type, resourceGroup, location, subscriptionId,
          managedBy = tostring(properties.managedBy),
          diskState = tostring(properties.diskState),
          diskSizeGB = properties.diskSizeGB,
          skuName = sku.name,
          timeCreated = tostring(properties.timeCreated),
          tags
`

const queryUnusedPublicIPs = `
Resources
| where type == 'microsoft.network/publicipaddresses'
| where isnull(properties.ipConfiguration)
| project id, name, type, resourceGroup, location, subscriptionId,
          ipConfiguration = properties.ipConfiguration,
          skuName = sku.name,
          ipAddress = tostring(properties.ipAddress),
          allocationMethod = tostring(properties.publicIPAllocationMethod),
          tags
`

const queryIdleAppServicePlans = `
Resources
| where type =~ 'microsoft.web/serverfarms'
| where properties.numberOfSites == 0
| project id, name, type, resourceGroup, location, subscriptionId,
          numberOfSites = properties.numberOfSites,
          skuName = sku.name,
          tier = sku.tier,
          size = sku.size,
          capacity = sku.capacity,
          kind,
          tags
`

const queryDetachedNSGs = `
Resources
| where type == 'microsoft.network/networksecuritygroups'
| where isnull(properties.networkInterfaces) or array_length(properties.networkInterfaces) == 0
| where isnull(properties.subnets) or array_length(properties.subnets) == 0
| project id, name, type, resourceGroup, location, subscriptionId,
          nicCount = coalesce(array_length(properties.networkInterfaces), 0),
          subnetCount = coalesce(array_length(properties.subnets), 0),
          rulesCount = coalesce(array_length(properties.securityRules), 0),
          tags
`

const queryStaleSnapshots = `
Resources
| where type == 'microsoft.compute/snapshots'
| extend sourceDiskId = tolower(tostring(properties.creationData.sourceResourceId))
| join kind=leftouter (
    Resources
    | where type == 'microsoft.compute/disks'
    | project diskId = tolower(id)
  ) on $left.sourceDiskId == $right.diskId
| extend sourceDiskExists = isnotempty(diskId)
| where sourceDiskExists == false or todatetime(properties.timeCreated) < ago(90d)
| project id, name, type, resourceGroup, location, subscriptionId,
          sourceDiskId, sourceDiskExists,
          diskSizeGB = properties.diskSizeGB,
          skuName = sku.name,
          timeCreated = tostring(properties.timeCreated),
          tags
`

// All lists every detector, highest estimated cost impact first. That order
// is also the scan order, so the expensive findings land at the top of the
// log while the scan is still running.
var All = []Detector{
	{Category: model.CategoryIdleAppPlan, DisplayName: "App Service Plans", Query: queryIdleAppServicePlans},
	{Category: model.CategoryUnattachedDisk, DisplayName: "Managed Disks", Query: queryUnattachedDisks, Mandatory: true},
	{Category: model.CategoryStaleSnapshot, DisplayName: "Snapshots", Query: queryStaleSnapshots},
	{Category: model.CategoryUnusedPublicIP, DisplayName: "Public IPs", Query: queryUnusedPublicIPs, Mandatory: true},
	{Category: model.CategoryOrphanedNIC, DisplayName: "Network Interfaces", Query: queryOrphanedNICs, Mandatory: true},
	{Category: model.CategoryDetachedNSG, DisplayName: "Network Security Groups", Query: queryDetachedNSGs},
}

// ByCategory returns the detector for a category, or false when unknown.
func ByCategory(category model.Category) (Detector, bool) {
	for _, d := range All {
		if d.Category == category {
			return d, true
		}
	}
	return Detector{}, false
}

// Enabled filters All down to the detectors a scan should run.
func Enabled(all bool) []Detector {
	if all {
		return All
	}
	var out []Detector
	for _, d := range All {
		if d.Mandatory {
			out = append(out, d)
		}
	}
	return out
}
