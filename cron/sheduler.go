package cron

import (
	"fmt"
	"log"
	"os"

	"github.com/robfig/cron/v3"
)

var cronLogger = cron.PrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))

// StartCron schedules builtin plus registered jobs and starts the scheduler.
// A run that is still going when its next tick fires is skipped.
func StartCron(builtin map[string]Job) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	addJobs := func(jobMap map[string]Job) error {
		for name, j := range jobMap {
			run := j.Run
			if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
				return fmt.Errorf("register job %s: %w", name, err)
			}
		}
		return nil
	}
	if err := addJobs(builtin); err != nil {
		return nil, err
	}
	if err := addJobs(Jobs()); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
