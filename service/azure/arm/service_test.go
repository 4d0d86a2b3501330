package azurearm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elC0mpa/az-prune/model"
)

func TestExtractResourceGroup(t *testing.T) {
	tests := []struct {
		name       string
		resourceID string
		want       string
	}{
		{
			name:       "standard resource ID",
			resourceID: "/subscriptions/sub/resourceGroups/rg-prod/providers/Microsoft.Compute/disks/d1",
			want:       "rg-prod",
		},
		{
			name:       "segment casing varies",
			resourceID: "/subscriptions/sub/resourcegroups/rg-dev/providers/Microsoft.Network/networkInterfaces/n1",
			want:       "rg-dev",
		},
		{
			name:       "no resource group segment",
			resourceID: "/subscriptions/sub/providers/Microsoft.Compute",
			want:       "",
		},
		{
			name:       "empty ID",
			resourceID: "",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractResourceGroup(tt.resourceID))
		})
	}
}

func TestUnsupportedCategoryError(t *testing.T) {
	err := &UnsupportedCategoryError{Category: model.CategoryIdleAppPlan}
	assert.Contains(t, err.Error(), "idle-app-service-plan")
}
