package classifier

import (
	"time"

	"github.com/elC0mpa/az-prune/model"
)

type service struct {
	now func() time.Time
}

type ClassifierService interface {
	Classify(record model.Resource) model.Category
}
