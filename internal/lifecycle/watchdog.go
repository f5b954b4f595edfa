package lifecycle

import "time"

// livenessProber is the subset of platform.ProcessManager the watchdog
// needs, kept narrow so tests can fake it without a full Provider.
type livenessProber interface {
	IsAlive(pid int32) bool
}

// watchdog polls a target process's liveness once per interval and calls
// stop the moment it disappears: "on termination,
// exit the process with status 0" — here, stop unblocks Run's select so
// the caller can do the exiting.
type watchdog struct {
	prober   livenessProber
	pid      int32
	interval time.Duration
	stop     func()
	done     chan struct{}
}

func newWatchdog(prober livenessProber, pid int32, interval time.Duration, stop func()) *watchdog {
	if interval <= 0 {
		interval = time.Second
	}
	return &watchdog{
		prober:   prober,
		pid:      pid,
		interval: interval,
		stop:     stop,
		done:     make(chan struct{}),
	}
}

func (w *watchdog) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if !w.prober.IsAlive(w.pid) {
				w.stop()
				return
			}
		case <-w.done:
			return
		}
	}
}

// Stop terminates the watchdog's polling goroutine without triggering its
// stop callback. Safe to call more than once.
func (w *watchdog) Stop() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
}
