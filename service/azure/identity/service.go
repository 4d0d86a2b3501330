package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"github.com/elC0mpa/az-prune/model"
	azureconfig "github.com/elC0mpa/az-prune/service/azure/config"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetAccountInfo implements service.IdentityService. A failure here is the
// authentication check: the portal URL builder and the scan both need the
// tenant ID it returns.
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	subscription, err := s.GetSubscriptionInfo(ctx)
	if err != nil {
		return nil, &azureconfig.AuthenticationError{Err: err}
	}

	displayName := s.subscriptionID
	if subscription.DisplayName != nil {
		displayName = *subscription.DisplayName
	}

	tenantID := ""
	if subscription.TenantID != nil {
		tenantID = *subscription.TenantID
	}

	return &model.AccountInfo{
		SubscriptionID:   s.subscriptionID,
		SubscriptionName: displayName,
		TenantID:         tenantID,
	}, nil
}

// GetSubscriptionInfo returns detailed Azure subscription information
func (s *service) GetSubscriptionInfo(ctx context.Context) (*armsubscriptions.Subscription, error) {
	resp, err := s.client.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription info: %w", err)
	}

	return &resp.Subscription, nil
}

// ListSubscriptions returns all enabled subscriptions the credential can see.
func (s *service) ListSubscriptions(ctx context.Context) ([]model.AccountInfo, error) {
	var subscriptions []model.AccountInfo

	pager := s.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}

		for _, sub := range page.Value {
			if sub.SubscriptionID == nil {
				continue
			}
			if sub.State != nil && *sub.State != armsubscriptions.SubscriptionStateEnabled {
				continue
			}

			info := model.AccountInfo{SubscriptionID: *sub.SubscriptionID}
			if sub.DisplayName != nil {
				info.SubscriptionName = *sub.DisplayName
			}
			if sub.TenantID != nil {
				info.TenantID = *sub.TenantID
			}
			subscriptions = append(subscriptions, info)
		}
	}

	return subscriptions, nil
}
