// Package rest implements the HTTP surface over the orchestrator services.
// Handlers stay thin: bind the request, call the service, translate errors.
package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arenaforge/arena-api/internal/engine/combat"
	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
	"github.com/arenaforge/arena-api/internal/orchestrators/battle"
	"github.com/arenaforge/arena-api/internal/orchestrators/roster"
	"github.com/arenaforge/arena-api/internal/pkg/idgen"
)

const requestIDHeader = "X-Request-ID"

// Config holds the dependencies for the REST handler
type Config struct {
	BattleService battle.Service
	RosterService roster.Service
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.RosterService == nil {
		vb.RequiredField("RosterService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Handler serves the arena REST API
type Handler struct {
	battleService battle.Service
	rosterService roster.Service
	idGen         idgen.Generator
}

// NewHandler creates a new REST handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		battleService: cfg.BattleService,
		rosterService: cfg.RosterService,
		idGen:         cfg.IDGenerator,
	}, nil
}

// Register mounts the API routes on the router
func (h *Handler) Register(r *gin.Engine) {
	r.Use(h.requestID())

	api := r.Group("/api/v1")

	api.POST("/characters", h.createCharacter)
	api.GET("/characters", h.listCharacters)
	api.GET("/characters/:id", h.getCharacter)
	api.DELETE("/characters/:id", h.deleteCharacter)
	api.PUT("/characters/:id/team", h.assignTeam)

	api.POST("/fights/duel", h.duel)
	api.POST("/fights/team", h.teamBattle)
	api.POST("/fights/team/:id/continue", h.continueTeamBattle)
	api.GET("/fights", h.listFights)
	api.GET("/fights/:id", h.getFight)
	api.DELETE("/fights/:id", h.deleteFight)
}

// requestID tags every request with a generated id for log correlation
func (h *Handler) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = h.idGen.Generate()
		}
		c.Header(requestIDHeader, id)
		c.Next()

		if len(c.Errors) > 0 {
			slog.ErrorContext(c.Request.Context(), "request failed",
				"request_id", id,
				"path", c.FullPath(),
				"status", c.Writer.Status())
		}
	}
}

type createCharacterRequest struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city"`
	Kind string `json:"kind" binding:"required"`
	Team string `json:"team"`
}

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgument(err.Error()))
		return
	}

	out, err := h.rosterService.CreateCharacter(c.Request.Context(), &roster.CreateCharacterInput{
		Name: req.Name,
		City: req.City,
		Kind: arena.Kind(req.Kind),
		Team: req.Team,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out.Character)
}

func (h *Handler) listCharacters(c *gin.Context) {
	out, err := h.rosterService.ListCharacters(c.Request.Context(), &roster.ListCharactersInput{
		Team: c.Query("team"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Characters)
}

func (h *Handler) getCharacter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.rosterService.GetCharacter(c.Request.Context(), &roster.GetCharacterInput{ID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Character)
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.rosterService.DeleteCharacter(c.Request.Context(), &roster.DeleteCharacterInput{ID: id}); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type assignTeamRequest struct {
	Team string `json:"team"`
}

func (h *Handler) assignTeam(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req assignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgument(err.Error()))
		return
	}

	out, err := h.rosterService.AssignTeam(c.Request.Context(), &roster.AssignTeamInput{
		CharacterID: id,
		Team:        req.Team,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Character)
}

type duelRequest struct {
	CharacterID int64 `json:"characterId" binding:"required"`
	OpponentID  int64 `json:"opponentId" binding:"required"`
}

func (h *Handler) duel(c *gin.Context) {
	var req duelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgument(err.Error()))
		return
	}

	out, err := h.battleService.Duel(c.Request.Context(), &battle.DuelInput{
		CharacterID: req.CharacterID,
		OpponentID:  req.OpponentID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"fight":  out.Fight,
		"winner": out.Winner,
		"loser":  out.Loser,
	})
}

type scriptedRoundRequest struct {
	Side string `json:"side"`
	Move string `json:"move"`
}

type teamBattleRequest struct {
	TeamA  string                 `json:"teamA" binding:"required"`
	TeamB  string                 `json:"teamB" binding:"required"`
	Mode   string                 `json:"mode" binding:"required"`
	Rounds []scriptedRoundRequest `json:"rounds"`
}

func (h *Handler) teamBattle(c *gin.Context) {
	var req teamBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgument(err.Error()))
		return
	}

	out, err := h.battleService.TeamBattle(c.Request.Context(), &battle.TeamBattleInput{
		TeamA:  req.TeamA,
		TeamB:  req.TeamB,
		Mode:   arena.BattleMode(req.Mode),
		Rounds: scriptedRounds(req.Rounds),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out.Fight)
}

type continueTeamBattleRequest struct {
	Rounds []scriptedRoundRequest `json:"rounds"`
}

func (h *Handler) continueTeamBattle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req continueTeamBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgument(err.Error()))
		return
	}

	out, err := h.battleService.ContinueTeamBattle(c.Request.Context(), &battle.ContinueTeamBattleInput{
		FightID: id,
		Rounds:  scriptedRounds(req.Rounds),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Fight)
}

func (h *Handler) listFights(c *gin.Context) {
	out, err := h.battleService.ListFights(c.Request.Context(), &battle.ListFightsInput{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Fights)
}

func (h *Handler) getFight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.battleService.GetFight(c.Request.Context(), &battle.GetFightInput{ID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Fight)
}

func (h *Handler) deleteFight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.battleService.DeleteFight(c.Request.Context(), &battle.DeleteFightInput{ID: id}); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func scriptedRounds(reqs []scriptedRoundRequest) []combat.ScriptedRound {
	if len(reqs) == 0 {
		return nil
	}
	rounds := make([]combat.ScriptedRound, 0, len(reqs))
	for _, r := range reqs {
		rounds = append(rounds, combat.ScriptedRound{
			Side: combat.Side(r.Side),
			Move: combat.Move(r.Move),
		})
	}
	return rounds
}

// pathID parses the :id path parameter, writing the error response itself
// when the value is not a positive integer
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, errors.InvalidArgumentf("invalid id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

// writeError translates a structured error into an HTTP response
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)

	body := gin.H{
		"code":    code.String(),
		"message": errors.GetMessage(err),
	}
	if meta := errors.GetMeta(err); len(meta) > 0 {
		body["meta"] = meta
	}

	_ = c.Error(err)
	c.JSON(code.HTTPStatus(), body)
}
