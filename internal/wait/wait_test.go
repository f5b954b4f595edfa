package wait

import (
	"testing"
	"time"

	"github.com/coreframe/macui-agent/internal/model"
)

func titleQuery(title string) model.ElementQuery {
	return model.ElementQuery{Title: title}
}

// TestRun_NotExists_DisappearsDuringPoll covers a condition that: a
// node matching the query is present initially and removed partway through
// the polling window.
func TestRun_NotExists_DisappearsDuringPoll(t *testing.T) {
	start := time.Now()
	evaluate := func() ([]model.UIElementInfo, error) {
		if time.Since(start) < 350*time.Millisecond {
			return []model.UIElementInfo{{Title: "Loading"}}, nil
		}
		return nil, nil
	}

	result, err := Run(evaluate, titleQuery("Loading"), model.WaitNotExists, 2*time.Second, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.ConditionMet {
		t.Fatal("expected condition_met true")
	}
	if result.WaitedMS < 300 || result.WaitedMS > 1000 {
		t.Errorf("waited_ms = %d, want in [300, 1000]", result.WaitedMS)
	}
}

// TestRun_Timeout covers the case where the predicate never
// matches, so Run must report a timeout, not an error.
func TestRun_Timeout(t *testing.T) {
	evaluate := func() ([]model.UIElementInfo, error) { return nil, nil }

	result, err := Run(evaluate, titleQuery("NeverAppears"), model.WaitExists, 200*time.Millisecond, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ConditionMet {
		t.Fatal("expected condition_met false on timeout")
	}
	if result.WaitedMS < 200 || result.WaitedMS > 400 {
		t.Errorf("waited_ms = %d, want in [200, 400]", result.WaitedMS)
	}
}

func TestRun_ExistsMatchesImmediately(t *testing.T) {
	evaluate := func() ([]model.UIElementInfo, error) {
		return []model.UIElementInfo{{Title: "OK", IsEnabled: true}}, nil
	}
	result, err := Run(evaluate, titleQuery("OK"), model.WaitExists, time.Second, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.ConditionMet || result.Matched == nil {
		t.Fatalf("expected immediate match, got %+v", result)
	}
	if result.WaitedMS > 50 {
		t.Errorf("expected near-instant return, waited_ms = %d", result.WaitedMS)
	}
}

func TestRun_Enabled_WaitsUntilEnabled(t *testing.T) {
	start := time.Now()
	evaluate := func() ([]model.UIElementInfo, error) {
		enabled := time.Since(start) >= 100*time.Millisecond
		return []model.UIElementInfo{{Title: "Submit", IsEnabled: enabled}}, nil
	}
	result, err := Run(evaluate, titleQuery("Submit"), model.WaitEnabled, time.Second, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.ConditionMet {
		t.Fatal("expected condition_met true once enabled")
	}
}

func TestRun_PropagatesEvaluateError(t *testing.T) {
	boom := errStub("boom")
	evaluate := func() ([]model.UIElementInfo, error) { return nil, boom }
	_, err := Run(evaluate, titleQuery("x"), model.WaitExists, time.Second, 10*time.Millisecond)
	if err != boom {
		t.Fatalf("expected evaluate error to propagate, got %v", err)
	}
}

type errStub string

func (e errStub) Error() string { return string(e) }
