package azureconfig

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

func NewService(subscriptionID string) (*service, error) {
	// DefaultAzureCredential covers environment variables, managed identity,
	// Azure CLI (az login), Azure PowerShell and VS Code sign-in.
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, &AuthenticationError{Err: fmt.Errorf("failed to create Azure credential: %w", err)}
	}

	return &service{
		subscriptionID: subscriptionID,
		credential:     credential,
	}, nil
}

func (s *service) GetCredential() *azidentity.DefaultAzureCredential {
	return s.credential
}

func (s *service) GetSubscriptionID() string {
	return s.subscriptionID
}
