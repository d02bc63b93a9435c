package bowling

import (
	"bowling_backend/internal/api"
	dto "bowling_backend/internal/api/dto/bowling"
	"bowling_backend/internal/converter"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/req"
	"bowling_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.BowlingService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.BowlingService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Score scores rolls without storing the game
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ScoreRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Score(r.Context(), converter.ToScoreRequest(payload))
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToScoreResponse(*result))
}

// RecordGame scores rolls and stores the game for the current bowler
func (h *Handler) RecordGame(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ScoreRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	game, err := h.serv.RecordGame(r.Context(), converter.ToScoreRequest(payload))
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGameResponse(*game))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	games, err := h.serv.ListGames(r.Context(), limit)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamesResponse(games))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.serv.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*game))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.LaneStats(r.Context())))
}
