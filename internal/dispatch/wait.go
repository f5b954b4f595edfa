package dispatch

import (
	"fmt"
	"net/http"
	"time"

	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/wait"
)

type waitRequest struct {
	Title          string `json:"title,omitempty"`
	TitleContains  string `json:"title_contains,omitempty"`
	Role           string `json:"role,omitempty"`
	Label          string `json:"label,omitempty"`
	PID            int32  `json:"pid,omitempty"`
	TimeoutMs      int    `json:"timeout_ms,omitempty"`
	PollIntervalMs int    `json:"poll_interval_ms,omitempty"`
	Condition      string `json:"condition,omitempty"`
}

type waitResponse struct {
	Success      bool                 `json:"success"`
	ConditionMet bool                 `json:"condition_met"`
	WaitedMs     int                  `json:"waited_ms"`
	Element      *model.UIElementInfo `json:"element,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// Wait implements POST /wait: the bounded polling subsystem. A timeout is
// a reported outcome (HTTP 200, condition_met:false), never an
// HTTP error — the one endpoint in the whole surface where that holds.
func (d *Dispatcher) Wait(w http.ResponseWriter, r *http.Request) {
	var req waitRequest
	if err := decodeBody(w, r, d.BodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	timeoutMs := req.TimeoutMs
	if timeoutMs == 0 {
		timeoutMs = model.DefaultTimeoutMS
	}
	pollMs := req.PollIntervalMs
	if pollMs == 0 {
		pollMs = model.DefaultPollIntervalMS
	}
	if err := model.ValidateWaitBounds(timeoutMs, pollMs); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}
	condition, err := model.ParseWaitCondition(req.Condition)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}

	query := buildQuery(req.Role, req.Title, req.TitleContains, req.Label, "")

	pid, err := d.resolvePID(req.PID)
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
		return
	}

	evaluate := func() ([]model.UIElementInfo, error) {
		return d.readTree(pid, 0)
	}

	result, err := wait.Run(evaluate, query, condition, time.Duration(timeoutMs)*time.Millisecond, time.Duration(pollMs)*time.Millisecond)
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to evaluate query: "+err.Error())
		return
	}

	resp := waitResponse{
		Success:      true,
		ConditionMet: result.ConditionMet,
		WaitedMs:     result.WaitedMS,
		Element:      result.Matched,
	}
	if !result.ConditionMet {
		if result.Matched == nil {
			resp.Element = result.LastSeen
		}
		resp.Error = fmt.Sprintf("Timeout: condition %q not met after %dms", condition, timeoutMs)
	}
	writeSuccess(w, resp)
}
