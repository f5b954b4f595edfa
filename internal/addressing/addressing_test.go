package addressing

import (
	"testing"

	"github.com/coreframe/macui-agent/internal/model"
)

// buildTree constructs a fixture: a window with one button child and one
// focused text field child.
func buildTree() []model.UIElementInfo {
	return []model.UIElementInfo{
		{
			Path: model.ElementPath{PID: 1234, Path: []int{}},
			Role: "AXWindow",
			Children: []model.UIElementInfo{
				{
					Path:    model.ElementPath{PID: 1234, Path: []int{0}},
					Role:    "AXButton",
					Title:   "OK",
					Frame:   model.ElementFrame{X: 100, Y: 200, Width: 80, Height: 40},
					Actions: []string{"press"},
				},
				{
					Path:      model.ElementPath{PID: 1234, Path: []int{1}},
					Role:      "AXTextField",
					Title:     "Email address",
					IsFocused: true,
					Children: []model.UIElementInfo{
						{
							Path:  model.ElementPath{PID: 1234, Path: []int{1, 0}},
							Role:  "AXStaticText",
							Label: "helper text",
						},
					},
				},
			},
		},
	}
}

func TestFindFirst_ExactTitle(t *testing.T) {
	el, ok := FindFirst(buildTree(), model.ElementQuery{Title: "OK"})
	if !ok {
		t.Fatal("expected a match")
	}
	if el.Role != "AXButton" {
		t.Errorf("Role = %q, want AXButton", el.Role)
	}
	if el.Children != nil {
		t.Error("FindFirst results should have children stripped")
	}
}

func TestFindFirst_TitleContainsCaseInsensitive(t *testing.T) {
	el, ok := FindFirst(buildTree(), model.ElementQuery{TitleContains: "email"})
	if !ok {
		t.Fatal("expected a case-insensitive substring match")
	}
	if el.Title != "Email address" {
		t.Errorf("Title = %q, want %q", el.Title, "Email address")
	}
}

func TestFindFirst_NoMatch(t *testing.T) {
	_, ok := FindFirst(buildTree(), model.ElementQuery{Title: "Cancel"})
	if ok {
		t.Fatal("expected no match")
	}
}

func TestFindByQuery_MaxResults(t *testing.T) {
	tree := []model.UIElementInfo{
		{Role: "AXButton", Title: "A"},
		{Role: "AXButton", Title: "B"},
		{Role: "AXButton", Title: "C"},
	}
	got := FindByQuery(tree, model.ElementQuery{Role: "AXButton"}, 2)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
}

func TestFindByQuery_PredicatesAreAnded(t *testing.T) {
	tree := []model.UIElementInfo{
		{Role: "AXButton", Title: "OK"},
		{Role: "AXTextField", Title: "OK"},
	}
	got := FindByQuery(tree, model.ElementQuery{Role: "AXButton", Title: "OK"}, 0)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Role != "AXButton" {
		t.Errorf("Role = %q, want AXButton", got[0].Role)
	}
}

func TestFindFocused(t *testing.T) {
	el, ok := FindFocused(buildTree())
	if !ok {
		t.Fatal("expected a focused element")
	}
	if el.Title != "Email address" {
		t.Errorf("Title = %q, want %q", el.Title, "Email address")
	}
}

func TestFindFocused_None(t *testing.T) {
	tree := []model.UIElementInfo{{Role: "AXButton", Title: "OK"}}
	_, ok := FindFocused(tree)
	if ok {
		t.Fatal("expected no focused element")
	}
}

func TestSubtree_DescendsByIndex(t *testing.T) {
	el, ok := Subtree(buildTree(), []int{0, 1})
	if !ok {
		t.Fatal("expected to resolve path [0, 1]")
	}
	if el.Title != "Email address" {
		t.Errorf("Title = %q, want %q", el.Title, "Email address")
	}
}

func TestSubtree_OutOfRange(t *testing.T) {
	_, ok := Subtree(buildTree(), []int{0, 9})
	if ok {
		t.Fatal("expected out-of-range descent to fail")
	}
}

func TestSubtree_EmptyPath(t *testing.T) {
	_, ok := Subtree(buildTree(), nil)
	if ok {
		t.Fatal("empty path should report not-found, callers use tree directly")
	}
}
