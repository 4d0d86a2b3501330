package orchestrator

import (
	"github.com/sirupsen/logrus"

	"github.com/elC0mpa/az-prune/model"
	"github.com/elC0mpa/az-prune/service"
	"github.com/elC0mpa/az-prune/service/grid"
)

type orchestratorService struct {
	identityService   service.IdentityService
	graphService      service.RecordService
	fallbackService   service.RecordService
	classifierService service.ClassifierService
	estimator         service.Estimator
	costService       service.CostService
	exportService     service.ExportService
	gridService       grid.GridService
	log               *logrus.Logger
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
