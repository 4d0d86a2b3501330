package azurecostmanagement

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"

	"github.com/elC0mpa/az-prune/model"
)

type service struct {
	subscriptionID string
	client         *armcostmanagement.QueryClient
}

type CostService interface {
	GetCurrentMonthCostsByService(ctx context.Context) (*model.CostInfo, error)
	GetCurrentMonthTotalCosts(ctx context.Context) (*string, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
