package lifecycle

import (
	"testing"
	"time"
)

type fakeProber struct {
	alive bool
}

func (f *fakeProber) IsAlive(pid int32) bool { return f.alive }

func TestWatchdog_StopsOnTermination(t *testing.T) {
	prober := &fakeProber{alive: true}
	stopped := make(chan struct{})
	wd := newWatchdog(prober, 1234, 10*time.Millisecond, func() { close(stopped) })
	go wd.run()
	defer wd.Stop()

	prober.alive = false

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("expected watchdog to call stop() after the process died")
	}
}

func TestWatchdog_Stop_IsIdempotent(t *testing.T) {
	wd := newWatchdog(&fakeProber{alive: true}, 1234, time.Second, func() {})
	wd.Stop()
	wd.Stop() // must not panic
}
