package model

import "testing"

func TestFlattenCompact_OnlyMeaningfulNodesSurvive(t *testing.T) {
	tree := []UIElementInfo{
		{
			Role: "AXGroup", // no title/label, not in meaningfulRoles
			Children: []UIElementInfo{
				{Role: "AXButton", Title: "OK", Actions: []string{"press"}},
				{Role: "AXGroup"},
			},
		},
	}
	flat := FlattenCompact(tree, true)
	if len(flat) != 1 {
		t.Fatalf("len(flat) = %d, want 1 (only the titled button survives)", len(flat))
	}
	if flat[0].Role != "AXButton" || flat[0].Depth != 1 {
		t.Errorf("flat[0] = %+v, want AXButton at depth 1", flat[0])
	}
}

func TestFlattenCompact_IncludeActionsFalseOmitsField(t *testing.T) {
	tree := []UIElementInfo{{Role: "AXButton", Title: "OK", Actions: []string{"press"}}}
	flat := FlattenCompact(tree, false)
	if len(flat) != 1 {
		t.Fatalf("len(flat) = %d, want 1", len(flat))
	}
	if flat[0].Actions != nil {
		t.Errorf("actions = %v, want nil when includeActions is false", flat[0].Actions)
	}
}

func TestFlattenCompact_IncludeActionsTrueKeepsNonEmptyActions(t *testing.T) {
	tree := []UIElementInfo{{Role: "AXButton", Title: "OK", Actions: []string{"press"}}}
	flat := FlattenCompact(tree, true)
	if len(flat[0].Actions) == 0 {
		t.Error("expected actions to survive when includeActions is true")
	}
}

func TestFlattenCompact_DepthTracksNesting(t *testing.T) {
	tree := []UIElementInfo{
		{
			Role:  "AXWindow",
			Title: "Main",
			Children: []UIElementInfo{
				{
					Role: "AXGroup",
					Children: []UIElementInfo{
						{Role: "AXButton", Title: "Deep"},
					},
				},
			},
		},
	}
	flat := FlattenCompact(tree, false)
	if len(flat) != 2 {
		t.Fatalf("len(flat) = %d, want 2 (window + nested button)", len(flat))
	}
	if flat[0].Depth != 0 {
		t.Errorf("root depth = %d, want 0", flat[0].Depth)
	}
	if flat[1].Depth != 2 {
		t.Errorf("nested button depth = %d, want 2", flat[1].Depth)
	}
}
