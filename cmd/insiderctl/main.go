package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/actions-insider/webhook-ingest/internal/app"
	"github.com/actions-insider/webhook-ingest/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "insiderctl",
		Short:        "Operations for the webhook ingestion service",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(processMissingEventsCmd())
	rootCmd.AddCommand(pushDemoDataCmd())
	rootCmd.AddCommand(trackOrgCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command) (*app.App, error) {
	cfg := config.Load()
	app.SetupLogging(cfg)
	return app.New(cmd.Context(), cfg)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", a.Store.Dialect())
			return nil
		},
	}
}

func processMissingEventsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "process-missing-events",
		Short: "Process stored webhook events that were never processed successfully",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			summary, err := a.Processor.Sweep(cmd.Context(), time.Now(), limit)
			if err != nil {
				return err
			}
			if summary.Total() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No unprocessed webhook events found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d events: %d succeeded, %d failed, %d discarded\n",
				summary.Total(), summary.Success, summary.Failure, summary.Noop)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10000, "max number of webhook events to process")
	return cmd
}

func pushDemoDataCmd() *cobra.Command {
	var (
		startedMinutesAgo int
		org               string
	)
	cmd := &cobra.Command{
		Use:   "push-demo-data",
		Short: "Replay recent runs of the flagged organizations as demo webhook events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			lookback := time.Duration(startedMinutesAgo) * time.Minute
			if org == "" {
				return a.NewScheduler().PushAll(cmd.Context(), lookback)
			}
			d, err := a.NewDriver()
			if err != nil {
				return err
			}
			n, err := d.ProcessOrganization(cmd.Context(), org, time.Now().Add(-lookback))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "replayed %d run attempts for %s\n", n, org)
			return nil
		},
	}
	cmd.Flags().IntVar(&startedMinutesAgo, "started-minutes-ago", 5, "replay runs created within this many minutes")
	cmd.Flags().StringVar(&org, "org", "", "replay only this organization login")
	return cmd
}

func trackOrgCmd() *cobra.Command {
	var off bool
	cmd := &cobra.Command{
		Use:   "track-org [owner-id]",
		Short: "Flag an owner for periodic demo replay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid owner id %q", args[0])
			}
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.Store.SetOwnerFetchFromAPI(cmd.Context(), id, !off); err != nil {
				return fmt.Errorf("owner %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "owner %d fetch_from_api=%t\n", id, !off)
			return nil
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "remove the flag instead")
	return cmd
}
