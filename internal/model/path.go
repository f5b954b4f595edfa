package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ElementPath addresses one accessibility node: a process id plus the
// ordered sequence of child indices from that process's application root.
// It is stable only within a session of unchanged UI structure; staleness
// fails cleanly at navigation time rather than being cached away.
type ElementPath struct {
	PID  int32 `json:"pid"`
	Path []int `json:"path"`
}

// String renders the path as "pid:i,j,k" for logging.
func (p ElementPath) String() string {
	parts := make([]string, len(p.Path))
	for i, idx := range p.Path {
		parts[i] = strconv.Itoa(idx)
	}
	return fmt.Sprintf("%d:%s", p.PID, strings.Join(parts, ","))
}

// ParseIndexList parses a comma-separated list of child indices, e.g. the
// rootPath and path query parameters accepted by the accessibility
// endpoints. An empty string yields an empty, non-nil slice.
func ParseIndexList(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", s, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("invalid path %q: negative index %d", s, v)
		}
		out[i] = v
	}
	return out, nil
}
