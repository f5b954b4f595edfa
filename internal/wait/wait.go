// Package wait implements a bounded polling subsystem: repeat an
// ElementQuery evaluation against a WaitCondition until it is met or a
// deadline passes. A timeout is a reported outcome, not an error.
package wait

import (
	"time"

	"github.com/coreframe/macui-agent/internal/addressing"
	"github.com/coreframe/macui-agent/internal/model"
)

// Evaluate fetches the current tree to evaluate the query against —
// typically a platform.Reader.ReadTree call scoped to one pid.
type Evaluate func() ([]model.UIElementInfo, error)

// Result is the outcome of a Run call.
type Result struct {
	ConditionMet bool
	WaitedMS     int
	Matched      *model.UIElementInfo
	// LastSeen is the most recent match observed, even on timeout, to aid
	// debugging.
	LastSeen *model.UIElementInfo
}

// Run polls evaluate every pollInterval, checking condition against the
// result of matching query, until satisfied or timeout elapses.
func Run(evaluate Evaluate, query model.ElementQuery, condition model.WaitCondition, timeout, pollInterval time.Duration) (Result, error) {
	start := time.Now()
	var lastSeen *model.UIElementInfo

	for {
		tree, err := evaluate()
		if err != nil {
			return Result{}, err
		}

		matches := addressing.FindByQuery(tree, query, 0)
		met, matched := conditionHolds(condition, matches)
		if matched != nil {
			lastSeen = matched
		}

		if met {
			return Result{
				ConditionMet: true,
				WaitedMS:     int(time.Since(start).Milliseconds()),
				Matched:      matched,
				LastSeen:     lastSeen,
			}, nil
		}

		elapsed := time.Since(start)
		if elapsed >= timeout {
			return Result{
				ConditionMet: false,
				WaitedMS:     int(elapsed.Milliseconds()),
				LastSeen:     lastSeen,
			}, nil
		}

		remaining := timeout - elapsed
		sleep := pollInterval
		if remaining < sleep {
			sleep = remaining
		}
		time.Sleep(sleep)
	}
}

// conditionHolds evaluates condition against the query's matches, returning
// whether it holds and, when applicable, the element relevant to debugging
// (the first match).
func conditionHolds(condition model.WaitCondition, matches []model.UIElementInfo) (bool, *model.UIElementInfo) {
	switch condition {
	case model.WaitNotExists:
		return len(matches) == 0, nil
	case model.WaitEnabled:
		if len(matches) == 0 {
			return false, nil
		}
		first := matches[0]
		return first.IsEnabled, &first
	case model.WaitFocused:
		if len(matches) == 0 {
			return false, nil
		}
		first := matches[0]
		return first.IsFocused, &first
	default: // model.WaitExists
		if len(matches) == 0 {
			return false, nil
		}
		first := matches[0]
		return true, &first
	}
}
