package azurearm

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"

	"github.com/elC0mpa/az-prune/model"
)

type service struct {
	subscriptionID   string
	disksClient      *armcompute.DisksClient
	snapshotsClient  *armcompute.SnapshotsClient
	interfacesClient *armnetwork.InterfacesClient
	publicIPClient   *armnetwork.PublicIPAddressesClient
}

type ARMService interface {
	GetRecords(ctx context.Context, category model.Category) ([]model.Resource, error)
}

// UnsupportedCategoryError marks categories only Resource Graph can serve.
type UnsupportedCategoryError struct {
	Category model.Category
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("category %q is not available through the ARM fallback", e.Category)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
