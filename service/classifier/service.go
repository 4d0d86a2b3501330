package classifier

import (
	"strings"
	"time"

	"github.com/elC0mpa/az-prune/model"
)

// StaleSnapshotAge is how old a snapshot must be before it counts as stale
// even when its source disk still exists.
const StaleSnapshotAge = 90 * 24 * time.Hour

func NewService() *service {
	return &service{now: time.Now}
}

// NewServiceWithClock pins the classifier's clock, keeping the snapshot-age
// predicate a pure function of (record, clock).
func NewServiceWithClock(now func() time.Time) *service {
	return &service{now: now}
}

// Classify implements service.ClassifierService. A record is tested only
// against the predicate matching its type; unknown types return CategoryNone,
// never an error.
func (s *service) Classify(record model.Resource) model.Category {
	switch strings.ToLower(record.Type) {
	case model.TypeNetworkInterface:
		if s.isOrphanedNIC(record) {
			return model.CategoryOrphanedNIC
		}
	case model.TypeManagedDisk:
		if s.isUnattachedDisk(record) {
			return model.CategoryUnattachedDisk
		}
	case model.TypePublicIP:
		if s.isUnusedPublicIP(record) {
			return model.CategoryUnusedPublicIP
		}
	case model.TypeAppServicePlan:
		if s.isIdleAppServicePlan(record) {
			return model.CategoryIdleAppPlan
		}
	case model.TypeNSG:
		if s.isDetachedNSG(record) {
			return model.CategoryDetachedNSG
		}
	case model.TypeSnapshot:
		if s.isStaleSnapshot(record) {
			return model.CategoryStaleSnapshot
		}
	}
	return model.CategoryNone
}

// A NIC is orphaned when no virtual machine is attached.
func (s *service) isOrphanedNIC(record model.Resource) bool {
	return record.PropEmpty("virtualMachine")
}

// A disk is unattached when nothing manages it and it is not mid-migration.
// ActiveSAS means the disk is being exported or copied; classifying it as
// unattached would invite deleting a disk that is in use.
func (s *service) isUnattachedDisk(record model.Resource) bool {
	if !record.PropEmpty("managedBy") {
		return false
	}
	return !strings.EqualFold(record.PropString("diskState"), "ActiveSAS")
}

// A public IP is unused when no IP configuration references it.
func (s *service) isUnusedPublicIP(record model.Resource) bool {
	return record.PropEmpty("ipConfiguration")
}

// An App Service Plan is idle when it hosts zero apps.
func (s *service) isIdleAppServicePlan(record model.Resource) bool {
	if _, ok := record.Properties["numberOfSites"]; !ok {
		return false
	}
	return record.PropFloat("numberOfSites") == 0
}

// An NSG is detached when neither a NIC nor a subnet references it.
func (s *service) isDetachedNSG(record model.Resource) bool {
	return record.PropFloat("nicCount") == 0 && record.PropFloat("subnetCount") == 0
}

// A snapshot is stale when its source disk is gone, or when it is older than
// StaleSnapshotAge.
func (s *service) isStaleSnapshot(record model.Resource) bool {
	if !record.PropBool("sourceDiskExists") {
		return true
	}
	created := record.PropTime("timeCreated")
	if created.IsZero() {
		return false
	}
	return s.now().Sub(created) > StaleSnapshotAge
}
