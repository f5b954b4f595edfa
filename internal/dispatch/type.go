package dispatch

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/coreframe/macui-agent/internal/addressing"
	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

// clipboardPasteThreshold is the rune count above which typeText prefers a
// clipboard-set-then-paste over character-by-character key synthesis.
// Past this length the per-character CGEvent round trip is both slower and
// more failure-prone than one paste, the same tradeoff that motivates the
// clipboard grab flow in reverse.
const clipboardPasteThreshold = 64

// typeText delivers text to target, routing long runs through the
// clipboard when one is available and falling back to direct key
// synthesis otherwise (short text, or a platform with no clipboard
// manager wired).
func (d *Dispatcher) typeText(target platform.Target, text string, delayMs int) error {
	if utf8.RuneCountInString(text) <= clipboardPasteThreshold || d.Provider.ClipboardManager == nil {
		return d.Exec.Do(func() error {
			return d.Provider.Inputter.TypeText(target, text, delayMs)
		})
	}
	return d.pasteViaClipboard(target, text)
}

// pasteViaClipboard sets the clipboard to text, synthesizes Cmd+V at
// target, and restores whatever was on the clipboard beforehand.
// Restoration is best-effort: a failure there doesn't mask the paste
// outcome, which is what the caller actually asked for.
func (d *Dispatcher) pasteViaClipboard(target platform.Target, text string) error {
	previous, _ := d.Provider.ClipboardManager.GetText()
	if err := d.Provider.ClipboardManager.SetText(text); err != nil {
		return fmt.Errorf("clipboard paste: %w", err)
	}
	err := d.Exec.Do(func() error {
		return d.Provider.Inputter.KeyEvent(target, "v", []model.KeyModifier{model.ModCmd})
	})
	_ = d.Provider.ClipboardManager.SetText(previous)
	return err
}

type typeRequest struct {
	Text          string             `json:"text"`
	DelayMs       int                `json:"delay_ms,omitempty"`
	Mode          string             `json:"mode,omitempty"`
	PID           int32              `json:"pid,omitempty"`
	Path          *model.ElementPath `json:"path,omitempty"`
	Role          string             `json:"role,omitempty"`
	Title         string             `json:"title,omitempty"`
	TitleContains string             `json:"title_contains,omitempty"`
}

type typeResponse struct {
	Success         bool                 `json:"success"`
	CharactersTyped int                  `json:"characters_typed"`
	Element         *model.UIElementInfo `json:"element,omitempty"`
}

// Type implements POST /type, dispatching on a mode-resolution table:
// replace mode prefers an atomic accessibility setValue when a target
// resolves, keys mode and replace mode's no-target fallback both go
// through typeText's key-synthesis-or-paste choice.
func (d *Dispatcher) Type(w http.ResponseWriter, r *http.Request) {
	var req typeRequest
	if err := decodeBody(w, r, d.TypeBodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		apierror.WriteValidation(w, http.StatusBadRequest, "text must be non-empty")
		return
	}
	mode, err := model.ParseTypeMode(req.Mode)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}

	query := buildQuery(req.Role, req.Title, req.TitleContains, "", "")
	hasQuery := !query.IsEmpty()
	hasPath := req.Path != nil
	hasPID := req.PID != 0
	charCount := utf8.RuneCountInString(req.Text)

	if mode == model.TypeReplace {
		switch {
		case hasPath:
			if err := d.Exec.Do(func() error {
				return d.Provider.ActionPerformer.PerformAction(*req.Path, model.ActionSetValue, req.Text)
			}); err != nil {
				apierror.WriteFailure(w, http.StatusInternalServerError, "setValue failed: "+err.Error())
				return
			}
			writeSuccess(w, typeResponse{Success: true, CharactersTyped: charCount})
			return

		case hasQuery:
			pid, err := d.resolvePID(req.PID)
			if err != nil {
				apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
				return
			}
			tree, err := d.readTree(pid, 0)
			if err != nil {
				apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read accessibility tree: "+err.Error())
				return
			}
			el, ok := addressing.FindFirst(tree, query)
			if !ok {
				apierror.WriteFailure(w, http.StatusBadRequest, "no element matched the given query")
				return
			}
			if err := d.Exec.Do(func() error {
				return d.Provider.ActionPerformer.PerformAction(el.Path, model.ActionSetValue, req.Text)
			}); err != nil {
				apierror.WriteFailure(w, http.StatusInternalServerError, "setValue failed: "+err.Error())
				return
			}
			writeSuccess(w, typeResponse{Success: true, CharactersTyped: charCount, Element: &el})
			return

		default:
			if err := d.typeText(platform.Target{}, req.Text, req.DelayMs); err != nil {
				apierror.WriteFailure(w, http.StatusInternalServerError, "type failed: "+err.Error())
				return
			}
			writeSuccess(w, typeResponse{Success: true, CharactersTyped: charCount})
			return
		}
	}

	// mode == keys
	var targetPID int32
	var element *model.UIElementInfo

	switch {
	case hasPath:
		targetPID = req.Path.PID

	case hasQuery:
		pid, err := d.resolvePID(req.PID)
		if err != nil {
			apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
			return
		}
		tree, err := d.readTree(pid, 0)
		if err != nil {
			apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read accessibility tree: "+err.Error())
			return
		}
		el, ok := addressing.FindFirst(tree, query)
		if !ok {
			apierror.WriteFailure(w, http.StatusBadRequest, "no element matched the given query")
			return
		}
		if err := d.Exec.Do(func() error {
			return d.Provider.ActionPerformer.PerformAction(el.Path, model.ActionFocus, "")
		}); err != nil {
			apierror.WriteFailure(w, http.StatusInternalServerError, "focus failed: "+err.Error())
			return
		}
		targetPID = el.Path.PID
		element = &el

	case hasPID:
		targetPID = req.PID
	}

	err = d.typeText(platform.Target{PID: targetPID}, req.Text, req.DelayMs)
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "type failed: "+err.Error())
		return
	}
	writeSuccess(w, typeResponse{Success: true, CharactersTyped: charCount, Element: element})
}
