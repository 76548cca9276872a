package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

const (
	chartHeight   = 10
	chartMinWidth = 40
	unknownLabel  = "(former members)"
)

func renderReport(out io.Writer, home *domain.Home, members []*domain.Member, homeStats *domain.HomeStatistic, users []domain.UserStatistic) error {
	data := homeStats.Data
	if len(data) == 0 {
		_, err := fmt.Fprintf(out, "%s: no data\n", home.Name)
		return err
	}

	first := data[0].Date.Format(dateLayout)
	last := data[len(data)-1].Date.Format(dateLayout)

	if _, err := fmt.Fprintf(out, "%s  %s .. %s\n\n", home.Name, first, last); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, renderChart(data)); err != nil {
		return err
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.UserID] = m.Name
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MEMBER\tPOINTS\tLAST 7 DAYS")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", memberLabel(u.User, names), totalPoints(u.Data), u.Data[len(u.Data)-1].PointsWeek)
	}
	fmt.Fprintf(tw, "%s\t%d\t%d\n", "TOTAL", totalPoints(data), data[len(data)-1].PointsWeek)

	return tw.Flush()
}

// renderChart plots daily points (red) against the rolling week (blue).
func renderChart(data []domain.DataPoint) string {
	day := make([]float64, len(data))
	week := make([]float64, len(data))
	for i, p := range data {
		day[i] = float64(p.PointsDay)
		week[i] = float64(p.PointsWeek)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(chartHeight),
		asciigraph.Caption("points per day (red) / rolling 7 days (blue)"),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
	}
	if len(data) > 1 {
		opts = append(opts, asciigraph.Width(max(chartMinWidth, len(data))))
	}

	return asciigraph.PlotMany([][]float64{day, week}, opts...)
}

func memberLabel(user *domain.UserRef, names map[string]string) string {
	if user == nil {
		return unknownLabel
	}
	if name := strings.TrimSpace(names[user.ID]); name != "" {
		return name
	}
	return user.ID
}

func totalPoints(data []domain.DataPoint) int {
	total := 0
	for _, p := range data {
		total += p.PointsDay
	}
	return total
}
