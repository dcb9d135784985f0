package cron

import (
	"warehouse.GO/core/registry"
)

// Job holds schedule and run function.
type Job struct {
	Schedule string
	Run      func(...string)
}

// Register adds a cron job. Call from init() in custom packages. Panics on a
// duplicate name or once the scheduler has read the jobs.
func Register(name string, schedule string, run func(...string)) {
	registry.Put(registry.GlobalRegistry, registry.KeyRegistryCron, name, Job{Schedule: schedule, Run: run})
}

// Unregister removes a job and unlocks the registry (for tests).
func Unregister(name string) {
	registry.Delete[Job](registry.GlobalRegistry, registry.KeyRegistryCron, name)
}

// Jobs returns a copy of the registered jobs and locks the registry.
func Jobs() map[string]Job {
	out := registry.Entries[Job](registry.GlobalRegistry, registry.KeyRegistryCron)
	registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	return out
}
