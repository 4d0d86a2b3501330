package utils

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawBanner() {
	banner := figure.NewFigure("az-prune", "", true)
	banner.Print()
	fmt.Println(text.FgHiBlue.Sprint(" find and prune orphaned Azure resources"))
	fmt.Println()
}
