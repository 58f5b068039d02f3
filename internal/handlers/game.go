package handlers

import (
	"net/http"
	"strconv"

	"github.com/jacfrist/hr-pg/internal/models"
	"github.com/jacfrist/hr-pg/internal/roles"
	"github.com/jacfrist/hr-pg/internal/services"
	"github.com/jacfrist/hr-pg/internal/ws"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	battle *services.BattleService
	llm    *services.LLMClient
	hub    *ws.Hub
}

func NewGameHandler(battle *services.BattleService, llm *services.LLMClient, hub *ws.Hub) *GameHandler {
	return &GameHandler{battle: battle, llm: llm, hub: hub}
}

type StartGameRequest struct {
	Role string `json:"role" binding:"required" example:"software_engineer"`
}

// ListRoles godoc
// @Summary      List interview roles
// @Description  Get the available interview tracks and their difficulty
// @Tags         game
// @Produce      json
// @Success      200 {array} roles.Role
// @Router       /api/v1/roles [get]
func (h *GameHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, roles.List())
}

// StartGame godoc
// @Summary      Start a battle session
// @Description  Create a session for a role with both sides at full health
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body StartGameRequest true "Role to battle"
// @Success      201 {object} models.Session
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game/start [post]
func (h *GameHandler) StartGame(c *gin.Context) {
	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var userID *uint
	if id, ok := c.Get("user_id"); ok {
		uid := id.(uint)
		userID = &uid
	}

	session, err := h.battle.Start(req.Role, userID)
	if err != nil {
		c.JSON(statusForBattleError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// NextQuestion godoc
// @Summary      Issue the next question
// @Description  Get the prompt for the next unanswered turn. Safe to retry: an already-issued unanswered turn is returned again.
// @Tags         game
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {object} services.TurnPrompt
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/game/{id}/question [post]
func (h *GameHandler) NextQuestion(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	prompt, err := h.battle.NextQuestion(uint(sessionID))
	if err != nil {
		c.JSON(statusForBattleError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, prompt)
}

type SubmitAnswerRequest struct {
	TurnIndex int    `json:"turn_index" binding:"required,min=1" example:"1"`
	Answer    string `json:"answer" binding:"required" example:"In my last role I..."`
}

// SubmitAnswer godoc
// @Summary      Submit an answer
// @Description  Grade the answer for an issued turn and apply the outcome. Any error leaves the session unchanged, so the same submission can be retried.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        id path int true "Session ID"
// @Param        request body SubmitAnswerRequest true "Answer data"
// @Success      200 {object} services.TurnResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/game/{id}/answer [post]
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.battle.SubmitAnswer(uint(sessionID), req.TurnIndex, req.Answer)
	if err != nil {
		c.JSON(statusForBattleError(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(uint(sessionID), ws.WSMessage{Type: "turn_resolved", Data: result})
	if result.Status != models.SessionStatusActive {
		h.hub.Broadcast(uint(sessionID), ws.WSMessage{Type: "battle_over", Data: result})
		h.hub.CloseSession(uint(sessionID))
	}

	c.JSON(http.StatusOK, result)
}

// GetGame godoc
// @Summary      Get session state
// @Description  Current health, turn counters and turns for a session
// @Tags         game
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {object} models.Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/game/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.battle.GetSession(uint(sessionID))
	if err != nil {
		c.JSON(statusForBattleError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

type AIStatusResponse struct {
	Available bool `json:"available"`
}

// AIStatus godoc
// @Summary      Check AI grading availability
// @Description  Reports whether an LLM is configured; without one the heuristic grader is used
// @Tags         game
// @Produce      json
// @Success      200 {object} AIStatusResponse
// @Router       /api/v1/game/ai-status [get]
func (h *GameHandler) AIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, AIStatusResponse{Available: h.llm != nil && h.llm.IsAvailable()})
}
