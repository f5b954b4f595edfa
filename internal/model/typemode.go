package model

import "fmt"

// TypeMode selects the text-insertion strategy for /type.
type TypeMode string

const (
	// TypeReplace performs a single atomic accessibility setValue.
	TypeReplace TypeMode = "replace"
	// TypeKeys synthesizes character-by-character keystrokes.
	TypeKeys TypeMode = "keys"
)

// ParseTypeMode validates a wire mode string, defaulting empty to replace.
func ParseTypeMode(s string) (TypeMode, error) {
	switch TypeMode(s) {
	case "":
		return TypeReplace, nil
	case TypeReplace, TypeKeys:
		return TypeMode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, TypeReplace, TypeKeys)
	}
}
