package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"crm-assistant/cluster"
	"crm-assistant/leads"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// insights fits the lead segments offline and prints every lead with its
// segment, score, and temperature. Useful for eyeballing the model
// without running the assistant.
func main() {
	k := flag.Int("k", 3, "number of segments")
	flag.Parse()

	if err := run(*k); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(k int) error {
	log := slog.Default()
	book := sampleLeads()

	points := make([][]float64, len(book))
	for i, features := range book {
		points[i] = features.Vector()
	}

	model, err := cluster.Fit(points, cluster.Config{
		K:         k,
		Seeding:   cluster.SeedFurthestPoint,
		Normalize: true,
	}, log)
	if err != nil {
		return err
	}

	scorer := leads.NewModel()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Lead", "Segment", "Score", "Conversion", "Temperature"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, features := range book {
		score := scorer.Score(features)
		table.Append([]string{
			fmt.Sprintf("lead-%02d", i+1),
			fmt.Sprintf("%d", model.Assignments[i]),
			fmt.Sprintf("%.1f", score),
			fmt.Sprintf("%.1f%%", scorer.Conversion(features)),
			colorizeCategory(leads.Category(score)),
		})
	}
	table.Render()

	silhouette := cluster.Silhouette(points, model.Assignments, model.K, cluster.Euclidean)
	fmt.Printf("\nsegments=%d iterations=%d converged=%v silhouette=%.3f\n",
		model.K, model.Iterations, model.Converged, silhouette)
	return nil
}

func colorizeCategory(category string) string {
	switch category {
	case "hot":
		return color.Red.Render(category)
	case "warm":
		return color.Yellow.Render(category)
	default:
		return color.Blue.Render(category)
	}
}

func sampleLeads() []leads.Features {
	return []leads.Features{
		{Engagement: 92, CompanySize: 5, BudgetFit: 88, Authority: 85, NeedUrgency: 90, Timeline: 85},
		{Engagement: 85, CompanySize: 4, BudgetFit: 80, Authority: 70, NeedUrgency: 80, Timeline: 75},
		{Engagement: 70, CompanySize: 3, BudgetFit: 65, Authority: 60, NeedUrgency: 55, Timeline: 60},
		{Engagement: 60, CompanySize: 3, BudgetFit: 55, Authority: 50, NeedUrgency: 45, Timeline: 50},
		{Engagement: 45, CompanySize: 2, BudgetFit: 40, Authority: 35, NeedUrgency: 40, Timeline: 35},
		{Engagement: 30, CompanySize: 2, BudgetFit: 35, Authority: 25, NeedUrgency: 20, Timeline: 30},
		{Engagement: 20, CompanySize: 1, BudgetFit: 15, Authority: 15, NeedUrgency: 15, Timeline: 20},
		{Engagement: 10, CompanySize: 1, BudgetFit: 10, Authority: 5, NeedUrgency: 10, Timeline: 10},
	}
}
