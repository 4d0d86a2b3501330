package azureconfig

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

type service struct {
	subscriptionID string
	credential     *azidentity.DefaultAzureCredential
}

type ConfigService interface {
	GetCredential() *azidentity.DefaultAzureCredential
	GetSubscriptionID() string
}

// AuthenticationError means no valid Azure session is available. It is
// surfaced as a blocking message; no automatic retry is attempted.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return "not authenticated to Azure (run 'az login' first): " + e.Err.Error()
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
