package notify

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestRecorder_DrainAndLast(t *testing.T) {
	r := &Recorder{}
	if _, ok := r.Last(); ok {
		t.Fatal("Last on empty recorder: want false")
	}
	Send(r, LevelSuccess, "inventory", "%s added", "P001")
	Send(r, LevelError, "inventory", "%s already exists", "P001")

	last, ok := r.Last()
	if !ok || last.Level != LevelError {
		t.Fatalf("Last = %+v, %v; want error level", last, ok)
	}
	if last.Message != "P001 already exists" {
		t.Errorf("Message = %q, want %q", last.Message, "P001 already exists")
	}
	got := r.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain len = %d, want 2", len(got))
	}
	if len(r.Drain()) != 0 {
		t.Error("second Drain should be empty")
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := LogNotifier{Logger: log.New(&buf, "", 0)}
	Send(n, LevelWarning, "client", "seed data used")
	if !strings.Contains(buf.String(), "[warning] client: seed data used") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestMulti(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	Send(Multi{a, b, Discard}, LevelInfo, "outbound", "loaded")
	if len(a.Drain()) != 1 || len(b.Drain()) != 1 {
		t.Error("Multi should deliver to every notifier")
	}
}

func TestSend_NilNotifier(t *testing.T) {
	Send(nil, LevelInfo, "x", "no panic")
}
