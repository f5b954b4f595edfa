package dispatch

import (
	"net/http"
	"strconv"

	"github.com/coreframe/macui-agent/internal/addressing"
	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
)

const (
	defaultTreeDepth = 5
	maxTreeDepth     = 10
	defaultMaxResults = 50
)

type treeResponse struct {
	Success  bool                  `json:"success"`
	Elements []model.UIElementInfo `json:"elements,omitempty"`
	Flat     []model.FlatElementInfo `json:"flat,omitempty"`
}

// AccessibilityTree implements GET /accessibility/tree. format=tree emits
// nested UIElementInfo; format=compact emits a depth-first flattened list
// of only the meaningful nodes (see internal/model/flatten.go).
func (d *Dispatcher) AccessibilityTree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pid, err := d.resolvePID(parseInt32(q.Get("pid")))
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
		return
	}

	maxDepth := defaultTreeDepth
	if v := q.Get("maxDepth"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxDepth = n
		}
	}
	if maxDepth > maxTreeDepth {
		maxDepth = maxTreeDepth
	}

	rootPath, err := model.ParseIndexList(q.Get("rootPath"))
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}

	tree, err := d.readTree(pid, maxDepth)
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read accessibility tree: "+err.Error())
		return
	}

	if len(rootPath) > 0 {
		node, ok := addressing.Subtree(tree, rootPath)
		if !ok {
			apierror.WriteFailure(w, http.StatusBadRequest, "rootPath did not resolve to an element")
			return
		}
		tree = node.Children
	}

	format := q.Get("format")
	if format == "compact" {
		includeActions := q.Get("includeActions") == "true"
		writeSuccess(w, treeResponse{Success: true, Flat: model.FlattenCompact(tree, includeActions)})
		return
	}
	writeSuccess(w, treeResponse{Success: true, Elements: tree})
}

type elementResponse struct {
	Success bool                `json:"success"`
	Element model.UIElementInfo `json:"element"`
}

// AccessibilityElement implements GET /accessibility/element: a single
// descriptor at pid+path, optionally expanded to childDepth.
func (d *Dispatcher) AccessibilityElement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pidStr := q.Get("pid")
	pathStr := q.Get("path")
	if pidStr == "" || pathStr == "" {
		apierror.WriteValidation(w, http.StatusBadRequest, "pid and path are required")
		return
	}
	pid := parseInt32(pidStr)
	path, err := model.ParseIndexList(pathStr)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}

	childDepth := 0
	if v := q.Get("childDepth"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			childDepth = n
		}
	}

	var el model.UIElementInfo
	err = d.Exec.Do(func() error {
		e, err := d.Provider.Reader.Describe(pid, path)
		el = e
		return err
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "failed to resolve path: "+err.Error())
		return
	}

	if childDepth > 0 {
		tree, err := d.readTree(pid, len(path)+childDepth)
		if err == nil {
			if node, ok := addressing.Subtree(tree, path); ok {
				el = node
			}
		}
	}

	writeSuccess(w, elementResponse{Success: true, Element: el})
}

type elementsResponse struct {
	Success  bool                  `json:"success"`
	Elements []model.UIElementInfo `json:"elements"`
}

// AccessibilityElements implements GET /accessibility/elements: a
// predicate search, bounded by maxResults, requiring at least one
// predicate.
func (d *Dispatcher) AccessibilityElements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := buildQuery(q.Get("role"), q.Get("title"), q.Get("title_contains"), q.Get("label_contains"), q.Get("value_contains"))
	if query.IsEmpty() {
		apierror.WriteValidation(w, http.StatusBadRequest, "at least one search criteria field is required")
		return
	}

	pid, err := d.resolvePID(parseInt32(q.Get("pid")))
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
		return
	}

	maxResults := defaultMaxResults
	if v := q.Get("maxResults"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxResults = n
		}
	}

	tree, err := d.readTree(pid, 0)
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read accessibility tree: "+err.Error())
		return
	}
	matches := addressing.FindByQuery(tree, query, maxResults)
	writeSuccess(w, elementsResponse{Success: true, Elements: matches})
}

// AccessibilityFocused implements GET /accessibility/focused.
func (d *Dispatcher) AccessibilityFocused(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pid, err := d.resolvePID(parseInt32(q.Get("pid")))
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
		return
	}

	tree, err := d.readTree(pid, 0)
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read accessibility tree: "+err.Error())
		return
	}
	el, ok := addressing.FindFocused(tree)
	if !ok {
		apierror.WriteFailure(w, http.StatusBadRequest, "no focused element found")
		return
	}
	writeSuccess(w, elementResponse{Success: true, Element: el})
}

type actionRequest struct {
	Path   model.ElementPath `json:"path"`
	Action string            `json:"action"`
	Value  string            `json:"value,omitempty"`
}

type actionResponse struct {
	Success bool `json:"success"`
}

// AccessibilityAction implements POST /accessibility/action: dispatch a
// named ActionKind to a path, with setValue requiring a non-empty value.
func (d *Dispatcher) AccessibilityAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeBody(w, r, d.BodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	action, err := model.ParseActionKind(req.Action)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}
	if action == model.ActionSetValue && req.Value == "" {
		apierror.WriteValidation(w, http.StatusBadRequest, "value is required for setValue")
		return
	}

	err = d.Exec.Do(func() error {
		return d.Provider.ActionPerformer.PerformAction(req.Path, action, req.Value)
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "action failed: "+err.Error())
		return
	}
	writeSuccess(w, actionResponse{Success: true})
}

func parseInt32(s string) int32 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
