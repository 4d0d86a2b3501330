package flag

import "github.com/elC0mpa/az-prune/model"

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
