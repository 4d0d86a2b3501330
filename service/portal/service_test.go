package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPortalURL(t *testing.T) {
	resourceID := "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg-prod/providers/Microsoft.Compute/disks/data-disk-01"
	tenantID := "11111111-1111-1111-1111-111111111111"

	url, err := BuildPortalURL(resourceID, tenantID)
	require.NoError(t, err)
	assert.Equal(t,
		"https://portal.azure.com/#@11111111-1111-1111-1111-111111111111/resource/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg-prod/providers/Microsoft.Compute/disks/data-disk-01",
		url)
}

func TestBuildPortalURLValidation(t *testing.T) {
	_, err := BuildPortalURL("", "tenant")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = BuildPortalURL("/subscriptions/sub/resource", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
