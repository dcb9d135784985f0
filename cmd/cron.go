package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"warehouse.GO/config"
	"warehouse.GO/core/cache"
	"warehouse.GO/cron"
	"warehouse.GO/service/dashboard"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)
		builtin := cron.Builtin(config.AppConfig.DashboardRefresh, dashboard.New(set, cache.NewCache(), 0))

		out := cmd.OutOrStdout()
		if jobName != "" {
			name := strings.ToLower(jobName)
			if j, ok := builtin[name]; ok {
				fmt.Fprintf(out, "Running cron job: %s\n", jobName)
				j.Run(args...)
				return nil
			}
			if j, ok := cron.Jobs()[name]; ok {
				fmt.Fprintf(out, "Running cron job: %s\n", jobName)
				j.Run(args...)
				return nil
			}
			return fmt.Errorf("unknown job: %s", jobName)
		}
		fmt.Fprintln(out, "Starting cron scheduler...")
		c, err := cron.StartCron(builtin)
		if err != nil {
			return err
		}
		defer c.Stop()
		fmt.Fprintln(out, "Cron scheduler started. Press Ctrl+C to exit.")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
