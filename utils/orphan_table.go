package utils

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/elC0mpa/az-prune/model"
)

// DrawOrphanTable renders the classified result set. Rows arrive already
// sorted and filtered by the grid.
func DrawOrphanTable(account model.AccountInfo, rows []model.OrphanedResource) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🧹 ORPHANED RESOURCES"))
	fmt.Printf(" Subscription: %s (%s)\n",
		text.FgBlue.Sprint(account.SubscriptionName),
		account.SubscriptionID)
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(rows) == 0 {
		fmt.Printf(" %s\n", text.FgHiGreen.Sprint("✅ No orphaned resources found"))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Name", "Type", "Resource Group", "Location", "Cost/Month", "Details"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, WidthMax: 48},
	})

	var total float64
	for _, row := range rows {
		costCell := row.Cost.Display()
		if row.Cost.Monthly > 0 {
			costCell = text.FgHiRed.Sprint(costCell)
		}
		tw.AppendRow(table.Row{
			row.Name,
			row.Category.DisplayName(),
			row.ResourceGroup,
			row.Location,
			costCell,
			row.Details,
		})
		total += row.Cost.Monthly
	}

	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprintf("%d resources", len(rows)),
		"", "", "",
		text.FgHiRed.Sprint(model.FormatCost(total) + "/mo"),
		"",
	})

	tw.Render()
}

func orderServiceCosts(costGroup map[string]model.ServiceCost) []model.ServiceCost {
	sortedServices := make([]model.ServiceCost, 0, len(costGroup))
	for key, group := range costGroup {
		sortedServices = append(sortedServices, model.ServiceCost{
			Name:   key,
			Amount: group.Amount,
			Unit:   group.Unit,
		})
	}

	sort.Slice(sortedServices, func(i, j int) bool {
		return sortedServices[i].Amount > sortedServices[j].Amount
	})

	return sortedServices
}

// DrawActualCosts renders month-to-date billed spend next to the estimates.
func DrawActualCosts(total string, info *model.CostInfo) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💰 BILLED MONTH-TO-DATE"))
	fmt.Printf(" Period: %s to %s\n", info.Start, info.End)
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Service", "Cost"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, group := range orderServiceCosts(info.CostGroup) {
		tw.AppendRow(table.Row{
			text.FgGreen.Sprint(group.Name),
			fmt.Sprintf("%.2f %s", group.Amount, group.Unit),
		})
	}

	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiGreen.Sprint("Total"),
		text.FgHiYellow.Sprint(total),
	})

	tw.Render()
}
