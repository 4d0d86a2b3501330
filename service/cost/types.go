package cost

import "github.com/elC0mpa/az-prune/model"

type service struct{}

type Estimator interface {
	Estimate(category model.Category, record model.Resource) model.CostEstimate
}
