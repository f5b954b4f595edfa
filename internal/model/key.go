package model

import (
	"fmt"
	"strings"
)

// KeyModifier is the closed set of keyboard modifiers, with aliases for the
// names real clients tend to send (command vs cmd, option vs alt, etc).
type KeyModifier string

const (
	ModCmd   KeyModifier = "cmd"
	ModCtrl  KeyModifier = "ctrl"
	ModAlt   KeyModifier = "alt"
	ModShift KeyModifier = "shift"
	ModFn    KeyModifier = "fn"
)

var modifierAliases = map[string]KeyModifier{
	"cmd": ModCmd, "command": ModCmd, "meta": ModCmd, "super": ModCmd,
	"ctrl": ModCtrl, "control": ModCtrl,
	"alt": ModAlt, "opt": ModAlt, "option": ModAlt,
	"shift": ModShift,
	"fn":    ModFn, "function": ModFn,
}

// ParseModifier resolves a modifier string (including aliases) to the
// closed KeyModifier set.
func ParseModifier(s string) (KeyModifier, error) {
	if m, ok := modifierAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown modifier %q", s)
}

// ParseModifiers resolves a list of modifier strings, returning the first
// parse error encountered, if any.
func ParseModifiers(ss []string) ([]KeyModifier, error) {
	out := make([]KeyModifier, 0, len(ss))
	for _, s := range ss {
		m, err := ParseModifier(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
