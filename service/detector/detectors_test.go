package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/az-prune/model"
)

func TestAllCoversEveryCategory(t *testing.T) {
	seen := make(map[model.Category]bool)
	for _, d := range All {
		assert.False(t, seen[d.Category], "duplicate detector for %s", d.Category)
		seen[d.Category] = true
		assert.NotEmpty(t, d.Query)
		assert.NotEmpty(t, d.DisplayName)
	}

	for _, category := range []model.Category{
		model.CategoryOrphanedNIC,
		model.CategoryUnattachedDisk,
		model.CategoryUnusedPublicIP,
		model.CategoryIdleAppPlan,
		model.CategoryDetachedNSG,
		model.CategoryStaleSnapshot,
	} {
		assert.True(t, seen[category], "no detector for %s", category)
	}
}

func TestEnabledDefaultsToMandatoryDetectors(t *testing.T) {
	defaults := Enabled(false)
	require.Len(t, defaults, 3)
	for _, d := range defaults {
		assert.True(t, d.Mandatory)
	}

	everything := Enabled(true)
	assert.Len(t, everything, len(All))
}

func TestByCategory(t *testing.T) {
	d, ok := ByCategory(model.CategoryStaleSnapshot)
	require.True(t, ok)
	assert.Equal(t, model.CategoryStaleSnapshot, d.Category)

	_, ok = ByCategory(model.Category("no-such-category"))
	assert.False(t, ok)
}

func TestQueriesProjectClassifierFields(t *testing.T) {
	fields := map[model.Category][]string{
		model.CategoryOrphanedNIC:    {"virtualMachine", "ipConfigurations"},
		model.CategoryUnattachedDisk: {"managedBy", "diskState", "diskSizeGB", "skuName"},
		model.CategoryUnusedPublicIP: {"ipConfiguration", "skuName"},
		model.CategoryIdleAppPlan:    {"numberOfSites", "capacity"},
		model.CategoryDetachedNSG:    {"nicCount", "subnetCount"},
		model.CategoryStaleSnapshot:  {"sourceDiskExists", "timeCreated"},
	}

	for category, wanted := range fields {
		d, ok := ByCategory(category)
		require.True(t, ok)
		for _, field := range wanted {
			assert.True(t, strings.Contains(d.Query, field),
				"%s query does not project %s", category, field)
		}
	}
}

func TestOrderedByEstimatedImpact(t *testing.T) {
	// App Service plans carry the largest monthly waste and run first so the
	// expensive findings surface before the cheap ones.
	assert.Equal(t, model.CategoryIdleAppPlan, All[0].Category)
}
