package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jdmorgan/noughts/internal/api/apierr"
	"github.com/jdmorgan/noughts/internal/api/request"
	"github.com/jdmorgan/noughts/internal/api/response"
	"github.com/jdmorgan/noughts/internal/model"
	"github.com/jdmorgan/noughts/internal/services/match"
	"github.com/jdmorgan/noughts/internal/services/matchmaker"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	matchmaker *matchmaker.Service
	engine     *match.Engine
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(mm *matchmaker.Service, engine *match.Engine) *MatchHandler {
	return &MatchHandler{
		matchmaker: mm,
		engine:     engine,
	}
}

// Join handles POST /api/v1/matches
func (h *MatchHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	player := model.Player{
		ID:          model.PlayerID(req.PlayerID),
		DisplayName: req.DisplayName,
	}

	m, err := h.matchmaker.JoinOrCreate(r.Context(), player)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	m, err := h.matchmaker.GetMatch(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// SubmitTurn handles POST /api/v1/matches/{id}/turns
func (h *MatchHandler) SubmitTurn(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	var req request.SubmitTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	pos := model.Position{X: req.X, Y: req.Y}
	if err := h.engine.SubmitTurn(r.Context(), id, model.PlayerID(req.PlayerID), pos); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
