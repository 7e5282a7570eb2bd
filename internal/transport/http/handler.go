package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alcotheque/cellar/internal/export"
	"github.com/alcotheque/cellar/internal/logger"
	"github.com/alcotheque/cellar/internal/model"
	"github.com/alcotheque/cellar/internal/recognition"
	bottlesvc "github.com/alcotheque/cellar/internal/service/bottle"
	"github.com/alcotheque/cellar/internal/stats"
)

type BottleService interface {
	Create(ctx context.Context, in bottlesvc.NewBottle) (*model.Bottle, error)
	Bottle(ctx context.Context, id string) (*model.Bottle, error)
	ListBottles(ctx context.Context, ownerID string, filter model.BottleFilter) ([]*model.Bottle, error)
	Transition(ctx context.Context, id string, in bottlesvc.TransitionInput) (*model.Bottle, error)
	EditFields(ctx context.Context, id string, patch model.FieldPatch) (*model.Bottle, error)
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]model.StatusHistoryEntry, error)
}

type LocationService interface {
	List(ctx context.Context, ownerID string) ([]*model.Location, error)
	Create(ctx context.Context, ownerID, name string) (*model.Location, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	bottles   BottleService
	locations LocationService
	now       func() time.Time
}

func NewHandler(bottles BottleService, locations LocationService) *Handler {
	return &Handler{bottles: bottles, locations: locations, now: time.Now}
}

func (h *Handler) ListBottles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	out, err := h.bottles.ListBottles(ctx, ownerID(ctx), filterFromQuery(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, bottlesFromModel(out))
}

func (h *Handler) CreateBottle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createBottleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(ctx, w, "malformed request body")
		return
	}

	in := req.toInput(ownerID(ctx))
	if req.Suggestion != nil {
		sug, err := recognition.Normalize(req.Suggestion.toSuggestion(), h.now().UTC())
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		in = applySuggestion(in, sug)
	}

	b, err := h.bottles.Create(ctx, in)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, bottleFromModel(b))
}

// applySuggestion fills creation fields the caller left empty with the
// normalized recognition pre-fill. Explicit values always win.
func applySuggestion(in bottlesvc.NewBottle, sug recognition.Suggestion) bottlesvc.NewBottle {
	if strings.TrimSpace(in.Name) == "" {
		in.Name = sug.Name
	}
	if in.Type == "" {
		in.Type = sug.Type
	}
	if in.Year == nil {
		in.Year = sug.Year
	}
	if in.EstimatedValue == nil {
		in.EstimatedValue = sug.EstimatedValue
	}
	return in
}

func (h *Handler) GetBottle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := h.bottles.Bottle(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, bottleFromModel(b))
}

func (h *Handler) PatchBottle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req patchBottleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(ctx, w, "malformed request body")
		return
	}

	b, err := h.bottles.EditFields(ctx, chi.URLParam(r, "id"), req.toPatch())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, bottleFromModel(b))
}

func (h *Handler) DeleteBottle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.bottles.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) TransitionBottle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(ctx, w, "malformed request body")
		return
	}

	b, err := h.bottles.Transition(ctx, chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, bottleFromModel(b))
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	favorite, err := h.bottles.ToggleFavorite(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]bool{"favorite": favorite})
}

func (h *Handler) BottleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.bottles.History(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, historyFromModel(entries))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bottles, err := h.bottles.ListBottles(ctx, ownerID(ctx), model.BottleFilter{})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	s := stats.Compute(bottles)

	resp := statsResponse{
		Bottles:        s.Bottles,
		UnitsByStage:   make(map[string]int64, len(s.UnitsByStage)),
		TotalUnits:     s.TotalUnits,
		ByType:         make(map[string]int, len(s.ByType)),
		ByLocation:     s.ByLocation,
		Favorites:      s.Favorites,
		PurchaseTotal:  s.PurchaseTotal,
		EstimatedTotal: s.EstimatedTotal,
		Gain:           s.Gain,
	}
	for stage, n := range s.UnitsByStage {
		resp.UnitsByStage[string(stage)] = n
	}
	for t, n := range s.ByType {
		resp.ByType[string(t)] = n
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Export streams the whole cellar as an xlsx attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := ownerID(ctx)

	bottles, err := h.bottles.ListBottles(ctx, owner, model.BottleFilter{})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	locs, err := h.locations.List(ctx, owner)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	names := make(map[string]string, len(locs))
	for _, l := range locs {
		names[l.ID] = l.Name
	}

	f, err := export.Workbook(bottles, names)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		"attachment; filename="+export.FileName(h.now().UTC()))
	if err := f.Write(w); err != nil {
		logger.Error(ctx, "write export workbook", logger.ErrorF(err))
	}
}

func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locs, err := h.locations.List(ctx, ownerID(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]locationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, locationFromModel(l))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(ctx, w, "malformed request body")
		return
	}

	loc, err := h.locations.Create(ctx, ownerID(ctx), req.Name)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, locationFromModel(loc))
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.locations.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var errMissingOwner = errors.New("missing X-Owner-ID header")

type ownerKey struct{}

func ownerID(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey{}).(string)
	return owner
}
