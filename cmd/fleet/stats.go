package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/techteamdev9/Fleet-Manager/internal/api"
	"github.com/techteamdev9/Fleet-Manager/internal/charts"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

const chartWidth = 60

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// nextCronDuration parses a 5-field cron expression and returns the duration
// until the next fire time. Returns 0 on parse error.
func nextCronDuration(expr string) time.Duration {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return 0
	}
	next := sched.Next(time.Now())
	d := time.Until(next)
	if d < 0 {
		return 0
	}
	return d
}

func newStatsCmd() *cobra.Command {
	var (
		configPath string
		username   string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show vehicle status stats",
		Long:  "Prints today's and the previous day's per-status counts with a bar chart. With --watch, re-fetches on the configured cron schedule until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, configPath, username, watch)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	cmd.Flags().StringVarP(&username, "username", "u", "", "login username (defaults to config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep refreshing on the stats.refresh_cron schedule")
	return cmd
}

func runStats(cmd *cobra.Command, configPath, username string, watch bool) error {
	cfg, client, err := clientFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := login(cmd, cfg, client, username)
	if err != nil {
		return err
	}

	var canvas charts.Canvas
	if err := printStats(cmd, client, session.Username, &canvas); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	for {
		d := nextCronDuration(cfg.Stats.RefreshCron)
		if d <= 0 {
			return fmt.Errorf("invalid stats refresh cron %q", cfg.Stats.RefreshCron)
		}
		select {
		case <-cmd.Context().Done():
			return nil
		case <-time.After(d):
		}
		if err := printStats(cmd, client, session.Username, &canvas); err != nil {
			return err
		}
	}
}

func printStats(cmd *cobra.Command, client *api.Client, username string, canvas *charts.Canvas) error {
	snapshot, err := client.Stats(cmd.Context(), username)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Today's Stats:")
	printStatusCounts(out, snapshot.Today)
	fmt.Fprintln(out, "\nPrevious Day's Stats:")
	printStatusCounts(out, snapshot.Previous)

	chart := canvas.Draw(charts.Bar, "Vehicle Status Stats", snapshot.Today)
	if view := chart.Render(chartWidth); view != "" {
		fmt.Fprintf(out, "\n%s\n", view)
	}
	return nil
}

func printStatusCounts(out io.Writer, counts map[string]int) {
	if len(counts) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, label := range labels {
		fmt.Fprintf(w, "  %s\t%d\n", label, counts[label])
	}
	w.Flush()
}

func newReportsCmd() *cobra.Command {
	var (
		configPath string
		username   string
		fromDate   string
		toDate     string
	)

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Show submitted reports by vehicle status",
		Long:  "Tallies report records per status and prints a distribution chart. The date bounds apply only when both are set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReports(cmd, configPath, username, fromDate, toDate)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	cmd.Flags().StringVarP(&username, "username", "u", "", "login username (defaults to config)")
	cmd.Flags().StringVar(&fromDate, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

func runReports(cmd *cobra.Command, configPath, username, fromDate, toDate string) error {
	cfg, client, err := clientFromConfig(configPath)
	if err != nil {
		return err
	}
	if _, err := login(cmd, cfg, client, username); err != nil {
		return err
	}

	records, err := client.Reports(cmd.Context(), fromDate, toDate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	counts := models.CountByStatus(records)
	if len(counts) == 0 {
		fmt.Fprintln(out, "No reports found.")
		return nil
	}

	fmt.Fprintf(out, "Reports: %d\n", len(records))
	printStatusCounts(out, counts)

	var canvas charts.Canvas
	chart := canvas.Draw(charts.Distribution, "Submitted Reports by Vehicle Status", counts)
	if view := chart.Render(chartWidth); view != "" {
		fmt.Fprintf(out, "\n%s\n", view)
	}
	return nil
}
