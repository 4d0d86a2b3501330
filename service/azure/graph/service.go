package azuregraph

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
	"github.com/sirupsen/logrus"

	"github.com/elC0mpa/az-prune/model"
	"github.com/elC0mpa/az-prune/service/detector"
)

func NewService(subscriptionID string, credential *Credential, log *logrus.Logger) (*service, error) {
	client, err := armresourcegraph.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource graph client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
		log:            log,
	}, nil
}

// GetRecords implements service.RecordService using the category's query
// from the detector catalog.
func (s *service) GetRecords(ctx context.Context, category model.Category) ([]model.Resource, error) {
	d, ok := detector.ByCategory(category)
	if !ok {
		return nil, fmt.Errorf("no detector for category %q", category)
	}
	return s.Query(ctx, d.Query)
}

// Query executes a Resource Graph query against the configured subscription
// and decodes every page of results.
func (s *service) Query(ctx context.Context, query string) ([]model.Resource, error) {
	var records []model.Resource
	var skipToken *string

	for {
		request := armresourcegraph.QueryRequest{
			Query:         to.Ptr(query),
			Subscriptions: []*string{to.Ptr(s.subscriptionID)},
			Options: &armresourcegraph.QueryRequestOptions{
				ResultFormat: to.Ptr(armresourcegraph.ResultFormatObjectArray),
				SkipToken:    skipToken,
			},
		}

		resp, err := s.client.Resources(ctx, request, nil)
		if err != nil {
			return nil, &QueryError{Err: err}
		}

		page, ok := resp.Data.([]any)
		if !ok {
			return nil, &QueryError{Err: fmt.Errorf("unexpected result shape %T", resp.Data)}
		}

		for _, item := range page {
			row, ok := item.(map[string]any)
			if !ok {
				continue
			}
			records = append(records, decodeRow(row))
		}

		if resp.SkipToken == nil || *resp.SkipToken == "" {
			break
		}
		skipToken = resp.SkipToken
	}

	s.log.WithField("results", len(records)).Debug("resource graph query complete")
	return records, nil
}

// decodeRow splits the well-known envelope columns off into struct fields and
// keeps every other projected column as a loosely-typed property.
func decodeRow(row map[string]any) model.Resource {
	record := model.Resource{Properties: make(map[string]any)}

	for key, value := range row {
		switch key {
		case "id":
			record.ID, _ = value.(string)
		case "name":
			record.Name, _ = value.(string)
		case "type":
			record.Type, _ = value.(string)
		case "resourceGroup":
			record.ResourceGroup, _ = value.(string)
		case "location":
			record.Location, _ = value.(string)
		case "subscriptionId":
			record.SubscriptionID, _ = value.(string)
		case "tags":
			record.Tags = decodeTags(value)
		default:
			record.Properties[key] = value
		}
	}

	return record
}

func decodeTags(value any) map[string]string {
	raw, ok := value.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	tags := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			tags[k] = s
		}
	}
	return tags
}
