package model

// actionDisplayNames maps accessibility action identifiers to the semantic
// ActionKind vocabulary used on the wire ( ActionKind entity).
// The prior RoleMap/MapRole abbreviated AX role strings to short codes
// ("AXButton" -> "btn"); this implementation keeps raw AX role strings on
// UIElementInfo.Role (: role is "the accessibility namespace"
// string), so only the action-name mapping survives here.
var actionDisplayNames = map[string]string{
	"AXPress":     "press",
	"AXCancel":    "cancel",
	"AXPick":      "pick",
	"AXIncrement": "increment",
	"AXDecrement": "decrement",
	"AXConfirm":   "confirm",
	"AXShowMenu":  "showMenu",
}

// MapActionName converts a raw accessibility action identifier to the
// public ActionKind vocabulary. Unrecognized actions pass through
// unchanged so new AX actions degrade gracefully instead of disappearing.
func MapActionName(axAction string) string {
	if name, ok := actionDisplayNames[axAction]; ok {
		return name
	}
	return axAction
}
