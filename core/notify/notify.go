package notify

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Level classifies a notification for the presentation layer.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one user-visible outcome of a store or import operation.
type Notification struct {
	Level   Level     `json:"level"`
	Domain  string    `json:"domain"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s] %s: %s", n.Level, n.Domain, n.Message)
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Notification) {})

// LogNotifier writes notifications through a *log.Logger (the standard logger when nil).
type LogNotifier struct {
	Logger *log.Logger
}

func (l LogNotifier) Notify(n Notification) {
	if l.Logger != nil {
		l.Logger.Println(n.String())
		return
	}
	log.Println(n.String())
}

// Recorder keeps notifications in memory until drained.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Drain returns and clears all recorded notifications.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, x := range m {
		x.Notify(n)
	}
}

// Send builds a notification stamped with the current time and delivers it.
func Send(to Notifier, level Level, domain, format string, args ...interface{}) {
	if to == nil {
		return
	}
	to.Notify(Notification{
		Level:   level,
		Domain:  domain,
		Message: fmt.Sprintf(format, args...),
		At:      time.Now(),
	})
}
