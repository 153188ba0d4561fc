package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// cellRequest and historyRequest are the path parameters of the two
// player actions. History bounds depend on the session, so only the lower
// bound is checked here.
type cellRequest struct {
	Index int `validate:"min=0,max=8"`
}

type historyRequest struct {
	Index int `validate:"min=0"`
}

type handlers struct {
	svc *app.Service
	tpl *templates
	log *zap.SugaredLogger
}

func (h *handlers) writeHTML(w http.ResponseWriter, t *template.Template, data any) {
	b, err := renderTemplate(t, data)
	if err != nil {
		h.log.Errorw("render failed", "template", t.Name(), "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *handlers) notFoundOr500(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, app.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	h.log.Errorw("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, h.tpl.index, nil)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs := h.svc.CreateGame()
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	h.writeHTML(w, h.tpl.page, newGameData(gs))
}

func (h *handlers) selectCell(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := pathIndex(r)
	req := cellRequest{Index: n}
	if err == nil {
		err = validate.Struct(req)
	}
	if err != nil {
		h.log.Debugw("cell index rejected", "game_id", id, "index", chi.URLParam(r, "index"), "error", err)
		h.renderCurrent(w, r, id)
		return
	}
	gs, err := h.svc.SelectCell(id, req.Index)
	h.renderAction(w, r, gs, err)
}

func (h *handlers) selectHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := pathIndex(r)
	req := historyRequest{Index: n}
	if err == nil {
		err = validate.Struct(req)
	}
	if err != nil {
		h.log.Debugw("history index rejected", "game_id", id, "index", chi.URLParam(r, "index"), "error", err)
		h.renderCurrent(w, r, id)
		return
	}
	gs, err := h.svc.SelectHistoryEntry(id, req.Index)
	h.renderAction(w, r, gs, err)
}

func pathIndex(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}

// renderAction draws the game fragment after a player action. Rejected
// moves and jumps are not shown to the player: the unchanged board is
// returned.
func (h *handlers) renderAction(w http.ResponseWriter, r *http.Request, gs app.Snapshot, err error) {
	if err != nil && !errors.Is(err, domain.ErrInvalidMove) && !errors.Is(err, domain.ErrInvalidHistoryIndex) {
		h.notFoundOr500(w, r, err)
		return
	}
	h.writeHTML(w, h.tpl.game, newGameData(gs))
}

func (h *handlers) renderCurrent(w http.ResponseWriter, r *http.Request, id string) {
	gs, err := h.svc.Get(id)
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	h.writeHTML(w, h.tpl.game, newGameData(gs))
}

func (h *handlers) restart(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Restart(chi.URLParam(r, "id"))
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) end(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.End(chi.URLParam(r, "id")); err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newStateResponse(gs)); err != nil {
		h.log.Errorw("encode state failed", "game_id", gs.ID, "error", err)
	}
}
