//go:build darwin

package darwin

import (
	"fmt"
	"strings"

	"github.com/coreframe/macui-agent/internal/model"
)

// DarwinActionPerformer implements platform.ActionPerformer for macOS. It
// merges what used to be separate ActionPerformer and ValueSetter
// adapters into one, since ActionKind treats setValue/focus and the
// AX-action verbs (press, confirm, cancel, ...) as one closed vocabulary
// dispatched by kind, not by a separate attribute-vs-action code path.
type DarwinActionPerformer struct {
	reader *DarwinReader
}

// NewActionPerformer constructs a macOS accessibility action dispatcher.
func NewActionPerformer(reader *DarwinReader) *DarwinActionPerformer {
	return &DarwinActionPerformer{reader: reader}
}

// axActionNames maps the public ActionKind vocabulary to the raw AX action
// identifiers AXUIElementPerformAction expects. setValue and focus are
// handled separately as attribute writes and never reach this map.
var axActionNames = map[model.ActionKind]string{
	model.ActionPress:     "AXPress",
	model.ActionConfirm:   "AXConfirm",
	model.ActionCancel:    "AXCancel",
	model.ActionIncrement: "AXIncrement",
	model.ActionDecrement: "AXDecrement",
	model.ActionShowMenu:  "AXShowMenu",
	model.ActionPick:      "AXPick",
}

// PerformAction resolves path against the current accessibility tree and
// dispatches action: navigation is a pure index-chase against the live
// tree, never a cached one.
func (p *DarwinActionPerformer) PerformAction(path model.ElementPath, action model.ActionKind, value string) error {
	ref, err := resolvePath(path.PID, path.Path)
	if err != nil {
		return err
	}
	defer ref.release()

	switch action {
	case model.ActionSetValue:
		if value == "" {
			return fmt.Errorf("setValue requires a non-empty value")
		}
		return ref.setStringAttr("AXValue", value)
	case model.ActionFocus:
		return ref.setBoolAttr("AXFocused", true)
	default:
		axName, ok := axActionNames[action]
		if !ok {
			return fmt.Errorf("unsupported action %q", action)
		}
		return ref.performAction(axName)
	}
}

// PressMenuItem resolves titles against pid's menu bar, case-insensitive
// substring match at each level with the first depth-first match winning
// ties, then presses the final item. It walks the live AX tree directly
// rather than going through
// ElementPath, since menu items are reached via the AXMenuBar attribute,
// not the application element's ordinary AXChildren index chain.
func (p *DarwinActionPerformer) PressMenuItem(pid int32, titles []string, background bool) error {
	if len(titles) == 0 {
		return fmt.Errorf("no menu titles given")
	}
	if !background {
		if err := activateApp(pid); err != nil {
			return err
		}
	}

	app := axApplicationElement(pid)
	if !app.valid() {
		return fmt.Errorf("no accessibility element for pid %d", pid)
	}
	defer app.release()

	menuBar := app.refAttr("AXMenuBar")
	if !menuBar.valid() {
		return fmt.Errorf("no menu bar for pid %d", pid)
	}
	defer menuBar.release()

	cur := menuBar
	owned := false
	for i, title := range titles {
		child, ok := findMenuChild(cur, title)
		if owned {
			cur.release()
		}
		if !ok {
			return fmt.Errorf("menu item %q not found at level %d", title, i)
		}
		cur = child
		owned = true

		if i < len(titles)-1 {
			// Descend into the submenu, which is the item's sole AXMenu child.
			n := cur.childCount()
			if n == 0 {
				cur.release()
				return fmt.Errorf("menu item %q has no submenu", title)
			}
			submenu := cur.childAt(0)
			cur.release()
			if !submenu.valid() {
				return fmt.Errorf("menu item %q has no submenu", title)
			}
			cur = submenu
		}
	}
	defer cur.release()
	return cur.performAction("AXPress")
}

// findMenuChild returns the first child of ref whose AXTitle contains
// title, case-insensitive.
func findMenuChild(ref axRef, title string) (axRef, bool) {
	n := ref.childCount()
	needle := strings.ToLower(title)
	for i := 0; i < n; i++ {
		child := ref.childAt(i)
		if !child.valid() {
			continue
		}
		if strings.Contains(strings.ToLower(child.stringAttr("AXTitle")), needle) {
			return child, true
		}
		child.release()
	}
	return 0, false
}
