// Package azurearm enumerates resources directly through Resource Manager
// APIs. It is the fallback record source when Resource Graph is unreachable:
// it lists without filtering and emits records with the same property keys as
// the graph projections, leaving the orphan decision to the classifier.
package azurearm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"

	"github.com/elC0mpa/az-prune/model"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	disksClient, err := armcompute.NewDisksClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create disks client: %w", err)
	}

	snapshotsClient, err := armcompute.NewSnapshotsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshots client: %w", err)
	}

	interfacesClient, err := armnetwork.NewInterfacesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create network interfaces client: %w", err)
	}

	publicIPClient, err := armnetwork.NewPublicIPAddressesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create public IP client: %w", err)
	}

	return &service{
		subscriptionID:   subscriptionID,
		disksClient:      disksClient,
		snapshotsClient:  snapshotsClient,
		interfacesClient: interfacesClient,
		publicIPClient:   publicIPClient,
	}, nil
}

// GetRecords implements service.RecordService for the categories the ARM
// surface can enumerate cheaply. App Service Plans and NSGs need the join
// semantics of Resource Graph and are not supported here.
func (s *service) GetRecords(ctx context.Context, category model.Category) ([]model.Resource, error) {
	switch category {
	case model.CategoryOrphanedNIC:
		return s.listNetworkInterfaces(ctx)
	case model.CategoryUnattachedDisk:
		return s.listDisks(ctx)
	case model.CategoryUnusedPublicIP:
		return s.listPublicIPs(ctx)
	case model.CategoryStaleSnapshot:
		return s.listSnapshots(ctx)
	}
	return nil, &UnsupportedCategoryError{Category: category}
}

func (s *service) listNetworkInterfaces(ctx context.Context) ([]model.Resource, error) {
	var records []model.Resource

	pager := s.interfacesClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list network interfaces: %w", err)
		}

		for _, nic := range page.Value {
			if nic.ID == nil {
				continue
			}
			record := s.baseRecord(*nic.ID, nic.Name, nic.Location, model.TypeNetworkInterface, nic.Tags)

			if nic.Properties != nil {
				if nic.Properties.VirtualMachine != nil && nic.Properties.VirtualMachine.ID != nil {
					record.Properties["virtualMachine"] = *nic.Properties.VirtualMachine.ID
				}
				if len(nic.Properties.IPConfigurations) > 0 {
					var configs []any
					for _, cfg := range nic.Properties.IPConfigurations {
						props := map[string]any{}
						if cfg.Properties != nil && cfg.Properties.PublicIPAddress != nil && cfg.Properties.PublicIPAddress.ID != nil {
							props["publicIPAddress"] = map[string]any{"id": *cfg.Properties.PublicIPAddress.ID}
						}
						configs = append(configs, map[string]any{"properties": props})
					}
					record.Properties["ipConfigurations"] = configs
				}
			}

			records = append(records, record)
		}
	}

	return records, nil
}

func (s *service) listDisks(ctx context.Context) ([]model.Resource, error) {
	var records []model.Resource

	pager := s.disksClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list disks: %w", err)
		}

		for _, disk := range page.Value {
			if disk.ID == nil {
				continue
			}
			record := s.baseRecord(*disk.ID, disk.Name, disk.Location, model.TypeManagedDisk, disk.Tags)

			if disk.ManagedBy != nil && *disk.ManagedBy != "" {
				record.Properties["managedBy"] = *disk.ManagedBy
			}
			if disk.SKU != nil && disk.SKU.Name != nil {
				record.Properties["skuName"] = string(*disk.SKU.Name)
			}
			if disk.Properties != nil {
				if disk.Properties.DiskState != nil {
					record.Properties["diskState"] = string(*disk.Properties.DiskState)
				}
				if disk.Properties.DiskSizeGB != nil {
					record.Properties["diskSizeGB"] = float64(*disk.Properties.DiskSizeGB)
				}
				if disk.Properties.TimeCreated != nil {
					record.Properties["timeCreated"] = disk.Properties.TimeCreated.Format(time.RFC3339)
				}
			}

			records = append(records, record)
		}
	}

	return records, nil
}

func (s *service) listPublicIPs(ctx context.Context) ([]model.Resource, error) {
	var records []model.Resource

	pager := s.publicIPClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list public IPs: %w", err)
		}

		for _, ip := range page.Value {
			if ip.ID == nil {
				continue
			}
			record := s.baseRecord(*ip.ID, ip.Name, ip.Location, model.TypePublicIP, ip.Tags)

			if ip.SKU != nil && ip.SKU.Name != nil {
				record.Properties["skuName"] = string(*ip.SKU.Name)
			}
			if ip.Properties != nil {
				if ip.Properties.IPConfiguration != nil && ip.Properties.IPConfiguration.ID != nil {
					record.Properties["ipConfiguration"] = *ip.Properties.IPConfiguration.ID
				}
				if ip.Properties.IPAddress != nil {
					record.Properties["ipAddress"] = *ip.Properties.IPAddress
				}
				if ip.Properties.PublicIPAllocationMethod != nil {
					record.Properties["allocationMethod"] = string(*ip.Properties.PublicIPAllocationMethod)
				}
			}

			records = append(records, record)
		}
	}

	return records, nil
}

func (s *service) listSnapshots(ctx context.Context) ([]model.Resource, error) {
	diskIDs, err := s.listDiskIDs(ctx)
	if err != nil {
		return nil, err
	}

	var records []model.Resource

	pager := s.snapshotsClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", err)
		}

		for _, snap := range page.Value {
			if snap.ID == nil {
				continue
			}
			record := s.baseRecord(*snap.ID, snap.Name, snap.Location, model.TypeSnapshot, snap.Tags)

			if snap.SKU != nil && snap.SKU.Name != nil {
				record.Properties["skuName"] = string(*snap.SKU.Name)
			}

			sourceDiskExists := false
			if snap.Properties != nil {
				if snap.Properties.DiskSizeGB != nil {
					record.Properties["diskSizeGB"] = float64(*snap.Properties.DiskSizeGB)
				}
				if snap.Properties.TimeCreated != nil {
					record.Properties["timeCreated"] = snap.Properties.TimeCreated.Format(time.RFC3339)
				}
				if snap.Properties.CreationData != nil && snap.Properties.CreationData.SourceResourceID != nil {
					sourceID := strings.ToLower(*snap.Properties.CreationData.SourceResourceID)
					record.Properties["sourceDiskId"] = sourceID
					sourceDiskExists = diskIDs[sourceID]
				}
			}
			record.Properties["sourceDiskExists"] = sourceDiskExists

			records = append(records, record)
		}
	}

	return records, nil
}

func (s *service) listDiskIDs(ctx context.Context) (map[string]bool, error) {
	ids := make(map[string]bool)

	pager := s.disksClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list disks: %w", err)
		}
		for _, disk := range page.Value {
			if disk.ID != nil {
				ids[strings.ToLower(*disk.ID)] = true
			}
		}
	}

	return ids, nil
}

func (s *service) baseRecord(id string, name, location *string, resourceType string, tags map[string]*string) model.Resource {
	record := model.Resource{
		ID:             id,
		Type:           resourceType,
		ResourceGroup:  extractResourceGroup(id),
		SubscriptionID: s.subscriptionID,
		Properties:     make(map[string]any),
	}
	if name != nil {
		record.Name = *name
	}
	if location != nil {
		record.Location = *location
	}
	if len(tags) > 0 {
		record.Tags = make(map[string]string, len(tags))
		for k, v := range tags {
			if v != nil {
				record.Tags[k] = *v
			}
		}
	}
	return record
}

// extractResourceGroup extracts the resource group from an Azure resource ID
func extractResourceGroup(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "resourceGroups") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
