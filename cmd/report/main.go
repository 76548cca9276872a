// Command report prints the points statistics of one home to the terminal.
//
//	report -home <id> [-from YYYY-MM-DD] [-to YYYY-MM-DD] [-tz Europe/Rome]
//
// The store is selected with the same DB_* variables as the API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/comitanigiacomo/kanso-home/internal/adapters/database"
	"github.com/comitanigiacomo/kanso-home/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-home/internal/config"
	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
	"github.com/comitanigiacomo/kanso-home/internal/core/services"
	"github.com/comitanigiacomo/kanso-home/internal/core/stats"
)

const (
	dateLayout  = "2006-01-02"
	defaultDays = 14
)

var (
	errMissingHome   = errors.New("-home is required")
	errInvertedRange = errors.New("-from is after -to")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseOptions builds the statistics request from the command line. Ranges
// longer than maxRangeDays buckets are rejected.
func parseOptions(args []string, now time.Time, maxRangeDays int) (domain.StatsInput, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	homeID := fs.String("home", "", "home id (required)")
	from := fs.String("from", "", "first day, YYYY-MM-DD (default: 13 days before -to)")
	to := fs.String("to", "", "last day, YYYY-MM-DD (default: today)")
	tz := fs.String("tz", "UTC", "IANA time zone of the day buckets")

	if err := fs.Parse(args); err != nil {
		return domain.StatsInput{}, err
	}
	if *homeID == "" {
		return domain.StatsInput{}, errMissingHome
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return domain.StatsInput{}, fmt.Errorf("invalid -tz: %w", err)
	}

	end := now.In(loc)
	if *to != "" {
		if end, err = time.ParseInLocation(dateLayout, *to, loc); err != nil {
			return domain.StatsInput{}, fmt.Errorf("invalid -to: %w", err)
		}
	}

	start := end.AddDate(0, 0, -(defaultDays - 1))
	if *from != "" {
		if start, err = time.ParseInLocation(dateLayout, *from, loc); err != nil {
			return domain.StatsInput{}, fmt.Errorf("invalid -from: %w", err)
		}
	}

	if start.After(end) {
		return domain.StatsInput{}, errInvertedRange
	}
	if days := stats.DayOffset(start, end) + 1; days > maxRangeDays {
		return domain.StatsInput{}, fmt.Errorf("range of %d days exceeds the limit of %d (STATS_MAX_RANGE_DAYS)", days, maxRangeDays)
	}

	return domain.StatsInput{
		HomeID:    *homeID,
		StartDate: start,
		EndDate:   end,
		Location:  loc,
	}, nil
}

func run(args []string, out io.Writer, now time.Time) error {
	cfg := config.LoadReport()

	input, err := parseOptions(args, now, cfg.StatsMaxRangeDays)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	homes := repository.NewSQLHomeRepository(db)
	store := repository.NewStatisticsStore(homes, repository.NewSQLReceiptRepository(db), repository.NewSQLTaskRepository(db))
	svc := services.NewStatsService(store)

	ctx := context.Background()

	home, err := homes.GetByID(ctx, input.HomeID)
	if err != nil {
		return err
	}

	members, err := homes.ListMembers(ctx, input.HomeID)
	if err != nil {
		return err
	}

	homeStats, err := svc.HomeStatistic(ctx, input)
	if err != nil {
		return err
	}

	userStats, err := svc.UserStatistics(ctx, input)
	if err != nil {
		return err
	}

	return renderReport(out, home, members, homeStats, userStats)
}
