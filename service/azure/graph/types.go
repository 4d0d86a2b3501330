package azuregraph

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
	"github.com/sirupsen/logrus"

	"github.com/elC0mpa/az-prune/model"
)

type service struct {
	subscriptionID string
	client         *armresourcegraph.Client
	log            *logrus.Logger
}

type GraphService interface {
	GetRecords(ctx context.Context, category model.Category) ([]model.Resource, error)
	Query(ctx context.Context, query string) ([]model.Resource, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential

// QueryError means the Resource Graph call failed (network or provider).
// Prior results, if any, stay visible; the caller may retry.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return "resource graph query failed: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
