package cron

import (
	"log"

	"warehouse.GO/service/dashboard"
)

const DashboardRefreshJob = "dashboardrefresh"

// DashboardRefresh recomputes and caches the dashboard summary on schedule.
func DashboardRefresh(schedule string, dash *dashboard.Service) Job {
	return Job{
		Schedule: schedule,
		Run: func(...string) {
			sum := dash.Refresh()
			log.Printf("dashboard refreshed: %d items, %d understock, %d discrepancies", sum.TotalItems, sum.Understock, sum.Discrepancies)
		},
	}
}

// Builtin returns the jobs every scheduler runs.
func Builtin(refreshSchedule string, dash *dashboard.Service) map[string]Job {
	if refreshSchedule == "" {
		refreshSchedule = "@every 5m"
	}
	return map[string]Job{
		DashboardRefreshJob: DashboardRefresh(refreshSchedule, dash),
	}
}
