package dispatch

import "net/http"

// httpServer is the subset of httpserver.Server the dispatch layer needs,
// kept narrow so this package does not import internal/httpserver just
// for Register's benefit.
type httpServer interface {
	Handle(method, path string, handler http.HandlerFunc)
}

// Register binds every route of the fixed endpoint set onto s.
func (d *Dispatcher) Register(s httpServer) {
	s.Handle(http.MethodGet, "/", d.Index)
	s.Handle(http.MethodGet, "/health", d.Health)
	s.Handle(http.MethodGet, "/status", d.Status)
	s.Handle(http.MethodGet, "/screenshot", d.Screenshot)
	s.Handle(http.MethodPost, "/click", d.Click)
	s.Handle(http.MethodPost, "/click/element", d.ClickElement)
	s.Handle(http.MethodPost, "/type", d.Type)
	s.Handle(http.MethodPost, "/key", d.Key)
	s.Handle(http.MethodPost, "/scroll", d.Scroll)
	s.Handle(http.MethodPost, "/wait", d.Wait)
	s.Handle(http.MethodGet, "/accessibility/tree", d.AccessibilityTree)
	s.Handle(http.MethodGet, "/accessibility/element", d.AccessibilityElement)
	s.Handle(http.MethodGet, "/accessibility/elements", d.AccessibilityElements)
	s.Handle(http.MethodGet, "/accessibility/focused", d.AccessibilityFocused)
	s.Handle(http.MethodPost, "/accessibility/action", d.AccessibilityAction)
	s.Handle(http.MethodGet, "/menu", d.MenuGet)
	s.Handle(http.MethodPost, "/menu", d.MenuPost)
	s.Handle(http.MethodPost, "/quit", d.Quit)
}
