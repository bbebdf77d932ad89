package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mkoehn/suchselgen/internal/api/apierr"
	"github.com/mkoehn/suchselgen/internal/api/request"
	"github.com/mkoehn/suchselgen/internal/api/response"
	"github.com/mkoehn/suchselgen/internal/dependencies/clock"
	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
	"github.com/mkoehn/suchselgen/internal/output"
	"github.com/mkoehn/suchselgen/internal/services/session"
	"github.com/mkoehn/suchselgen/internal/storage"
)

// idAlphabet excludes easily-confused characters
const idAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

// PuzzleHandler handles puzzle endpoints
type PuzzleHandler struct {
	storage storage.Storage
	clock   clock.Clock
	rnd     random.Random
	logger  *slog.Logger
}

// NewPuzzleHandler creates a new puzzle handler. rnd is used for puzzle
// ids only; each generation run gets its own source so that a request
// seed stays reproducible.
func NewPuzzleHandler(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *PuzzleHandler {
	return &PuzzleHandler{
		storage: store,
		clock:   clk,
		rnd:     rnd,
		logger:  logger,
	}
}

// Generate handles POST /api/v1/puzzles
func (h *PuzzleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GeneratePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.Words) == 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("words is required"))
		return
	}

	fillVoid := true
	if req.Fill != nil {
		fillVoid = *req.Fill
	}

	var runRnd random.Random
	if req.Seed != nil {
		runRnd = random.NewSeeded(*req.Seed)
	} else {
		runRnd = random.New()
	}

	controller, err := session.New(session.Config{
		Width:            req.Width,
		Height:           req.Height,
		Mode:             req.Mode,
		Contiguous:       req.Contiguous,
		Directions:       req.Directions,
		Fill:             fillVoid,
		Profile:          req.Profile,
		PlaceAttempts:    req.PlaceAttempts,
		CreationAttempts: req.CreationAttempts,
	}, runRnd, h.logger)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	result, err := controller.Generate(r.Context(), req.Words)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	id := model.PuzzleID(h.rnd.String(8, idAlphabet))
	puzzle := model.Snapshot(id, result.Grid, result.Unplaced, h.clock.Now())
	if err := h.storage.SavePuzzle(r.Context(), puzzle); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, puzzle)
}

// Get handles GET /api/v1/puzzles/{id}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])
	puzzle, err := h.storage.GetPuzzle(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, puzzle)
}

// List handles GET /api/v1/puzzles
func (h *PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.storage.ListPuzzleIDs(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PuzzleList{IDs: ids})
}

// Delete handles DELETE /api/v1/puzzles/{id}
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])
	if _, err := h.storage.GetPuzzle(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if err := h.storage.DeletePuzzle(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// RenderText handles GET /api/v1/puzzles/{id}/text
func (h *PuzzleHandler) RenderText(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])
	puzzle, err := h.storage.GetPuzzle(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_ = output.RenderPuzzleText(w, puzzle)
}
