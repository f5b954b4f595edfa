// Package addressing implements the pure, OS-independent half of element
// addressing: depth-first predicate matching over an already-fetched
// UIElementInfo tree, rootPath descent, and focused-node location. The
// live, OS-touching half — chasing a child-index path against the
// *current* accessibility tree — lives in the platform adapter
// (internal/platform/darwin's resolvePath/describeAt), since that step
// must consult no cached tree. This package is grounded on the prior
// internal/model/filter.go traversal/predicate style, re-keyed from flat
// IDs to index-chase paths.
package addressing

import "github.com/coreframe/macui-agent/internal/model"

// FindByQuery walks tree depth-first, collecting up to maxResults elements
// that satisfy every predicate on q. maxResults <= 0 means unlimited.
func FindByQuery(tree []model.UIElementInfo, q model.ElementQuery, maxResults int) []model.UIElementInfo {
	var out []model.UIElementInfo
	var walk func(nodes []model.UIElementInfo)
	walk = func(nodes []model.UIElementInfo) {
		for _, n := range nodes {
			if maxResults > 0 && len(out) >= maxResults {
				return
			}
			if q.Matches(n) {
				out = append(out, stripChildren(n))
			}
			walk(n.Children)
		}
	}
	walk(tree)
	return out
}

// FindFirst is FindByQuery with maxResults=1, returning the single match
// (if any) plus whether one was found.
func FindFirst(tree []model.UIElementInfo, q model.ElementQuery) (model.UIElementInfo, bool) {
	matches := FindByQuery(tree, q, 1)
	if len(matches) == 0 {
		return model.UIElementInfo{}, false
	}
	return matches[0], true
}

// FindFocused returns the first element in tree (depth-first) whose
// IsFocused flag is set, used by the GET /accessibility/focused endpoint.
func FindFocused(tree []model.UIElementInfo) (model.UIElementInfo, bool) {
	var found model.UIElementInfo
	ok := false
	var walk func(nodes []model.UIElementInfo)
	walk = func(nodes []model.UIElementInfo) {
		for _, n := range nodes {
			if ok {
				return
			}
			if n.IsFocused {
				found = n
				ok = true
				return
			}
			walk(n.Children)
		}
	}
	walk(tree)
	return found, ok
}

// Subtree descends tree along path (child-index sequence against the
// already-fetched snapshot) and returns the node reached, for the
// GET /accessibility/tree?rootPath=... endpoint. An empty path resolves to
// no node and reports false — callers treat a zero-length path as "no
// descent" and use tree directly; Subtree exists for the non-empty case.
func Subtree(tree []model.UIElementInfo, path []int) (model.UIElementInfo, bool) {
	if len(path) == 0 {
		return model.UIElementInfo{}, false
	}
	nodes := tree
	var cur model.UIElementInfo
	for i, idx := range path {
		if idx < 0 || idx >= len(nodes) {
			return model.UIElementInfo{}, false
		}
		cur = nodes[idx]
		if i < len(path)-1 {
			nodes = cur.Children
		}
	}
	return cur, true
}

func stripChildren(e model.UIElementInfo) model.UIElementInfo {
	e.Children = nil
	return e
}
