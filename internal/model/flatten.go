package model

// FlattenCompact converts a tree of UIElementInfo into the depth-first
// flattened list the `/accessibility/tree?format=compact` endpoint emits:
// only nodes that carry identifying text or belong to the fixed
// meaningful-role set survive, each tagged with its depth. When
// includeActions is false the actions field is stripped from each entry so
// the wire shape matches the round-trip property exactly
// (`includeActions=false` omits `actions`; `true` keeps it whenever the
// underlying node has any).
//
// This replaces the prior FlattenElements, which kept every node
// unconditionally and built a human-readable " > "-joined role breadcrumb
// instead of a depth integer.
func FlattenCompact(elements []UIElementInfo, includeActions bool) []FlatElementInfo {
	var result []FlatElementInfo
	for _, el := range elements {
		flattenCompactRecursive(el, 0, includeActions, &result)
	}
	return result
}

func flattenCompactRecursive(el UIElementInfo, depth int, includeActions bool, result *[]FlatElementInfo) {
	if el.IsMeaningful() {
		entry := el
		entry.Children = nil
		if !includeActions {
			entry.Actions = nil
		}
		*result = append(*result, FlatElementInfo{Depth: depth, UIElementInfo: entry})
	}
	for _, child := range el.Children {
		flattenCompactRecursive(child, depth+1, includeActions, result)
	}
}
