package flag

import (
	"flag"

	"github.com/elC0mpa/az-prune/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	subscription := flag.String("subscription", "", "Azure subscription ID (defaults to AZURE_SUBSCRIPTION_ID)")
	all := flag.Bool("all", false, "Run every detector, not just NICs, disks and public IPs")
	costs := flag.Bool("costs", false, "Show month-to-date billed spend next to the estimates")
	export := flag.Bool("export", false, "Export the results to an xlsx report")
	csv := flag.Bool("csv", false, "Export the results to a csv report")
	output := flag.String("output", "", "Report path (default azure-orphans-YYYY-MM-DD.xlsx)")
	filter := flag.String("filter", "", "Only show rows whose name or resource group contains this text")
	asc := flag.Bool("asc", false, "Sort by cost ascending instead of descending")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	return model.Flags{
		Subscription:  *subscription,
		All:           *all,
		Costs:         *costs,
		Export:        *export,
		CSV:           *csv,
		Output:        *output,
		Filter:        *filter,
		SortAscending: *asc,
		Verbose:       *verbose,
	}, nil
}
