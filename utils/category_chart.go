package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/elC0mpa/az-prune/model"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

type categoryCost struct {
	category model.Category
	amount   float64
}

// DrawCategoryChart shows where the wasted spend concentrates, one bar per
// resource category.
func DrawCategoryChart(rows []model.OrphanedResource) {
	costs := sumByCategory(rows)
	if len(costs) < 2 {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📊 WASTE BY CATEGORY"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(110, 16)
	indexedColors := assignRankedColors(costs)

	for idx, cost := range costs {
		data := barchart.BarData{
			Label: fmt.Sprintf("%s: %s", cost.category.DisplayName(), model.FormatCost(cost.amount)),
			Values: []barchart.BarValue{
				{
					Value: cost.amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func sumByCategory(rows []model.OrphanedResource) []categoryCost {
	totals := make(map[model.Category]float64)
	for _, row := range rows {
		totals[row.Category] += row.Cost.Monthly
	}

	costs := make([]categoryCost, 0, len(totals))
	for category, amount := range totals {
		costs = append(costs, categoryCost{category: category, amount: amount})
	}

	sort.Slice(costs, func(i, j int) bool {
		if costs[i].amount != costs[j].amount {
			return costs[i].amount > costs[j].amount
		}
		return costs[i].category < costs[j].category
	})

	return costs
}

func assignRankedColors(costs []categoryCost) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	resultColors := make([]string, len(costs))
	for rank := range costs {
		if rank < len(palette) {
			resultColors[rank] = palette[rank]
		} else {
			resultColors[rank] = palette[len(palette)-1]
		}
	}

	return resultColors
}
