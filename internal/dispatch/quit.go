package dispatch

import (
	"net/http"
	"time"
)

// Quit implements POST /quit: respond success, then schedule the quit hook
// shortly after so the HTTP response reaches the client before the
// process (or, in tests, just the server) shuts down.
func (d *Dispatcher) Quit(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]bool{"success": true})
	if d.QuitHook != nil {
		go func() {
			time.Sleep(50 * time.Millisecond)
			d.QuitHook()
		}()
	}
}
