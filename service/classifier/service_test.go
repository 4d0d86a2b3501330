package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elC0mpa/az-prune/model"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService() *service {
	return NewServiceWithClock(func() time.Time { return fixedNow })
}

func nicRecord(props map[string]any) model.Resource {
	return model.Resource{
		ID:         "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/networkInterfaces/nic1",
		Name:       "nic1",
		Type:       "microsoft.network/networkinterfaces",
		Properties: props,
	}
}

func TestClassifyOrphanedNIC(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  model.Category
	}{
		{
			name:  "no virtual machine attached",
			props: map[string]any{},
			want:  model.CategoryOrphanedNIC,
		},
		{
			name:  "virtual machine key present but null",
			props: map[string]any{"virtualMachine": nil},
			want:  model.CategoryOrphanedNIC,
		},
		{
			name:  "virtual machine key present but empty object",
			props: map[string]any{"virtualMachine": map[string]any{}},
			want:  model.CategoryOrphanedNIC,
		},
		{
			name: "attached to a virtual machine",
			props: map[string]any{
				"virtualMachine": map[string]any{"id": "/subscriptions/sub/providers/Microsoft.Compute/virtualMachines/vm1"},
			},
			want: model.CategoryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestService().Classify(nicRecord(tt.props)))
		})
	}
}

func TestClassifyUnattachedDisk(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  model.Category
	}{
		{
			name:  "unattached disk",
			props: map[string]any{"diskState": "Unattached"},
			want:  model.CategoryUnattachedDisk,
		},
		{
			name:  "disk managed by a VM",
			props: map[string]any{"managedBy": "/subscriptions/sub/providers/Microsoft.Compute/virtualMachines/vm1"},
			want:  model.CategoryNone,
		},
		{
			name:  "unmanaged but exporting via SAS",
			props: map[string]any{"diskState": "ActiveSAS"},
			want:  model.CategoryNone,
		},
		{
			name:  "SAS state comparison ignores case",
			props: map[string]any{"diskState": "activesas"},
			want:  model.CategoryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := model.Resource{Type: "microsoft.compute/disks", Properties: tt.props}
			assert.Equal(t, tt.want, newTestService().Classify(record))
		})
	}
}

func TestClassifyUnusedPublicIP(t *testing.T) {
	unused := model.Resource{Type: "microsoft.network/publicipaddresses", Properties: map[string]any{}}
	assert.Equal(t, model.CategoryUnusedPublicIP, newTestService().Classify(unused))

	attached := model.Resource{
		Type: "microsoft.network/publicipaddresses",
		Properties: map[string]any{
			"ipConfiguration": map[string]any{"id": "/subscriptions/sub/ipConfigurations/cfg"},
		},
	}
	assert.Equal(t, model.CategoryNone, newTestService().Classify(attached))
}

func TestClassifyIdleAppServicePlan(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  model.Category
	}{
		{
			name:  "zero sites",
			props: map[string]any{"numberOfSites": float64(0)},
			want:  model.CategoryIdleAppPlan,
		},
		{
			name:  "hosting apps",
			props: map[string]any{"numberOfSites": float64(3)},
			want:  model.CategoryNone,
		},
		{
			name:  "site count missing entirely",
			props: map[string]any{},
			want:  model.CategoryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := model.Resource{Type: "microsoft.web/serverfarms", Properties: tt.props}
			assert.Equal(t, tt.want, newTestService().Classify(record))
		})
	}
}

func TestClassifyDetachedNSG(t *testing.T) {
	detached := model.Resource{
		Type:       "microsoft.network/networksecuritygroups",
		Properties: map[string]any{"nicCount": float64(0), "subnetCount": float64(0)},
	}
	assert.Equal(t, model.CategoryDetachedNSG, newTestService().Classify(detached))

	onSubnet := model.Resource{
		Type:       "microsoft.network/networksecuritygroups",
		Properties: map[string]any{"nicCount": float64(0), "subnetCount": float64(1)},
	}
	assert.Equal(t, model.CategoryNone, newTestService().Classify(onSubnet))
}

func TestClassifyStaleSnapshot(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  model.Category
	}{
		{
			name: "source disk deleted",
			props: map[string]any{
				"sourceDiskExists": false,
				"timeCreated":      fixedNow.Add(-24 * time.Hour).Format(time.RFC3339),
			},
			want: model.CategoryStaleSnapshot,
		},
		{
			name: "older than ninety days",
			props: map[string]any{
				"sourceDiskExists": true,
				"timeCreated":      fixedNow.Add(-91 * 24 * time.Hour).Format(time.RFC3339),
			},
			want: model.CategoryStaleSnapshot,
		},
		{
			name: "recent with live source disk",
			props: map[string]any{
				"sourceDiskExists": true,
				"timeCreated":      fixedNow.Add(-10 * 24 * time.Hour).Format(time.RFC3339),
			},
			want: model.CategoryNone,
		},
		{
			name: "live source disk and unparseable creation time",
			props: map[string]any{
				"sourceDiskExists": true,
				"timeCreated":      "not-a-timestamp",
			},
			want: model.CategoryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := model.Resource{Type: "microsoft.compute/snapshots", Properties: tt.props}
			assert.Equal(t, tt.want, newTestService().Classify(record))
		})
	}
}

func TestClassifyUnknownTypeIsExcluded(t *testing.T) {
	record := model.Resource{
		Type:       "microsoft.storage/storageaccounts",
		Properties: map[string]any{},
	}
	assert.Equal(t, model.CategoryNone, newTestService().Classify(record))
}

func TestClassifyTypeMatchingIgnoresCase(t *testing.T) {
	record := model.Resource{
		Type:       "Microsoft.Network/networkInterfaces",
		Properties: map[string]any{},
	}
	assert.Equal(t, model.CategoryOrphanedNIC, newTestService().Classify(record))
}
