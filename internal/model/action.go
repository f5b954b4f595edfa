package model

import "fmt"

// ActionKind is the closed set of semantic actions an accessibility node
// may be asked to perform.
type ActionKind string

const (
	ActionPress     ActionKind = "press"
	ActionSetValue  ActionKind = "setValue"
	ActionFocus     ActionKind = "focus"
	ActionConfirm   ActionKind = "confirm"
	ActionCancel    ActionKind = "cancel"
	ActionIncrement ActionKind = "increment"
	ActionDecrement ActionKind = "decrement"
	ActionShowMenu  ActionKind = "showMenu"
	ActionPick      ActionKind = "pick"
)

var validActions = map[ActionKind]bool{
	ActionPress: true, ActionSetValue: true, ActionFocus: true,
	ActionConfirm: true, ActionCancel: true, ActionIncrement: true,
	ActionDecrement: true, ActionShowMenu: true, ActionPick: true,
}

// ParseActionKind validates a wire string against the closed ActionKind set.
func ParseActionKind(s string) (ActionKind, error) {
	k := ActionKind(s)
	if !validActions[k] {
		return "", fmt.Errorf("unknown action %q", s)
	}
	return k, nil
}
