package cron

import (
	"testing"
)

func TestRegistry_Register_Jobs(t *testing.T) {
	var got []string
	Register("stockreport", "@every 1h", func(args ...string) {
		got = args
	})
	defer Unregister("stockreport")

	j, ok := Jobs()["stockreport"]
	if !ok {
		t.Fatal("stockreport not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	j.Run("P005")
	if len(got) != 1 || got[0] != "P005" {
		t.Errorf("Run args = %v, want [P005]", got)
	}
}

func TestRegistry_LockedAfterJobs(t *testing.T) {
	Jobs()
	defer Unregister("latejob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when registering after Jobs()")
		}
	}()
	Register("latejob", "@hourly", func(...string) {})
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", func(...string) {})
}
