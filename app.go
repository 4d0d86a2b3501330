package main

import (
	"fmt"
	"os"

	azurearm "github.com/elC0mpa/az-prune/service/azure/arm"
	azureconfig "github.com/elC0mpa/az-prune/service/azure/config"
	azurecostmanagement "github.com/elC0mpa/az-prune/service/azure/costmanagement"
	azuregraph "github.com/elC0mpa/az-prune/service/azure/graph"
	azureidentity "github.com/elC0mpa/az-prune/service/azure/identity"
	"github.com/elC0mpa/az-prune/service/classifier"
	"github.com/elC0mpa/az-prune/service/cost"
	"github.com/elC0mpa/az-prune/service/export"
	"github.com/elC0mpa/az-prune/service/flag"
	"github.com/elC0mpa/az-prune/service/grid"
	"github.com/elC0mpa/az-prune/service/orchestrator"
	"github.com/elC0mpa/az-prune/utils"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	subscriptionID := flags.Subscription
	if subscriptionID == "" {
		subscriptionID = os.Getenv("AZURE_SUBSCRIPTION_ID")
	}
	if subscriptionID == "" {
		fmt.Fprintln(os.Stderr, "no subscription: pass -subscription or set AZURE_SUBSCRIPTION_ID")
		os.Exit(1)
	}

	log := utils.NewLogger(flags.Verbose)

	cfgService, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	utils.StartSpinner()

	identityService, err := azureidentity.NewService(subscriptionID, cfgService.GetCredential())
	if err != nil {
		panic(err)
	}

	graphService, err := azuregraph.NewService(subscriptionID, cfgService.GetCredential(), log)
	if err != nil {
		panic(err)
	}

	armService, err := azurearm.NewService(subscriptionID, cfgService.GetCredential())
	if err != nil {
		panic(err)
	}

	costService, err := azurecostmanagement.NewService(subscriptionID, cfgService.GetCredential())
	if err != nil {
		panic(err)
	}

	orchestratorService := orchestrator.NewService(
		identityService,
		graphService,
		armService,
		classifier.NewService(),
		cost.NewService(),
		costService,
		export.NewService(),
		grid.NewService(),
		log,
	)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		utils.StopSpinner()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
