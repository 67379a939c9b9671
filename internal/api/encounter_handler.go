package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pokerquest/internal/config"
	"pokerquest/internal/logging"
	"pokerquest/internal/service"
	"pokerquest/internal/storage"

	"github.com/gin-gonic/gin"
)

// EncounterHandler groups all encounter-related HTTP handlers.
type EncounterHandler struct {
	repo storage.Repository
	cfg  *config.LoadedConfig
}

// NewEncounterHandler creates a handler bound to the repository and loaded
// stage configuration.
func NewEncounterHandler(repo storage.Repository, cfg *config.LoadedConfig) *EncounterHandler {
	return &EncounterHandler{repo: repo, cfg: cfg}
}

type createEncounterRequest struct {
	Stage string `json:"stage" binding:"required"`
	// Seed is optional; 0 means "pick one".
	Seed int64 `json:"seed"`
}

type cardSelectionRequest struct {
	CardIndexes []int `json:"card_indexes"`
}

// ListStages returns the configured stage table (names and boss stats only;
// rules stay server-side).
func (h *EncounterHandler) ListStages(c *gin.Context) {
	type stageView struct {
		Name          string `json:"name"`
		BossName      string `json:"boss_name"`
		BossHitPoints int    `json:"boss_hit_points"`
	}
	out := make([]stageView, 0, len(h.cfg.Stages))
	for _, s := range h.cfg.Stages {
		out = append(out, stageView{Name: s.Name, BossName: s.BossName, BossHitPoints: s.BossHitPoints})
	}
	c.JSON(http.StatusOK, gin.H{"stages": out})
}

// ListEncounters returns the most recent runs.
func (h *EncounterHandler) ListEncounters(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	encounters, err := service.ListEncounters(h.repo, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"encounters": encounters})
}

// DeleteEncounter removes a run from history.
func (h *EncounterHandler) DeleteEncounter(c *gin.Context) {
	if err := service.DeleteEncounter(h.repo, c.Param("uuid")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateEncounter starts a new run against a stage.
func (h *EncounterHandler) CreateEncounter(c *gin.Context) {
	var req createEncounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stage is required"})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	enc, err := service.StartEncounter(h.repo, h.cfg, req.Stage, seed)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logging.Info("encounter started", logging.Fields{"encounter": enc.EncounterUUID, "stage": enc.StageName})
	c.JSON(http.StatusCreated, enc)
}

// GetEncounter returns the current encounter snapshot.
func (h *EncounterHandler) GetEncounter(c *gin.Context) {
	enc, err := service.GetEncounter(h.repo, c.Param("uuid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enc)
}

// SubmitAttack plays one turn with the selected cards and returns the
// ordered action list for playback.
func (h *EncounterHandler) SubmitAttack(c *gin.Context) {
	var req cardSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card_indexes is required"})
		return
	}
	enc, actions, err := service.SubmitAttack(h.repo, h.cfg, c.Param("uuid"), req.CardIndexes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"encounter": enc, "actions": actions})
}

// SwapCards spends the turn exchanging cards.
func (h *EncounterHandler) SwapCards(c *gin.Context) {
	var req cardSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card_indexes is required"})
		return
	}
	enc, actions, err := service.SwapCards(h.repo, h.cfg, c.Param("uuid"), req.CardIndexes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"encounter": enc, "actions": actions})
}

// ResignEncounter abandons the run.
func (h *EncounterHandler) ResignEncounter(c *gin.Context) {
	enc, err := service.ResignEncounter(h.repo, c.Param("uuid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enc)
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStageNotFound), errors.Is(err, service.ErrEncounterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEncounterFinished),
		errors.Is(err, service.ErrNoCardsSelected),
		errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, service.ErrTooManyCards):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logging.Error("request failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
