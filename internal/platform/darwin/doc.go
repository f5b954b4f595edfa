//go:build darwin

// Package darwin implements the platform adapter interfaces (internal/platform)
// using CoreGraphics, ApplicationServices (Accessibility) and AppKit via cgo.
// It registers itself with platform.NewProviderFunc in init.go and is only
// ever imported for its side effect from cmd/root.go's darwin build.
package darwin
