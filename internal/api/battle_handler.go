package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeriYeaki/Pokemon-Battle/internal/config"
	"github.com/TeriYeaki/Pokemon-Battle/internal/constants"
	"github.com/TeriYeaki/Pokemon-Battle/internal/dedupe"
	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
	"github.com/TeriYeaki/Pokemon-Battle/internal/logging"
	"github.com/TeriYeaki/Pokemon-Battle/internal/service"
)

// BattleHandler groups the battle- and simulation-related HTTP handlers.
type BattleHandler struct {
	cfg *config.Config
}

// NewBattleHandler creates a handler bound to the loaded configuration.
func NewBattleHandler(cfg *config.Config) *BattleHandler {
	return &BattleHandler{cfg: cfg}
}

// applyWildcardDefaults fills the configured surge chance into team specs
// that armed a wildcard without overriding it.
func (h *BattleHandler) applyWildcardDefaults(req *service.BattleRequest) {
	if req.Team1.Wildcard && req.Team1.SurgeChance == 0 {
		req.Team1.SurgeChance = h.cfg.Wildcard.SurgeChance
	}
	if req.Team2.Wildcard && req.Team2.SurgeChance == 0 {
		req.Team2.SurgeChance = h.cfg.Wildcard.SurgeChance
	}
}

// RunBattle plays a single match to its terminal state and returns the
// result with full narration.
func (h *BattleHandler) RunBattle(c *gin.Context) {
	var req service.BattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.applyWildcardDefaults(&req)

	res, err := service.RunBattle(req)
	if err != nil {
		if errors.Is(err, game.ErrConfiguration) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		logging.Error("battle run failed", err, logging.Fields{constants.LogFieldMode: req.Mode})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrBattleFailed})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Simulate runs an aggregate of seeded matches and returns outcome counts
// and match-length percentiles. Identical concurrent requests share one
// simulation job.
func (h *BattleHandler) Simulate(c *gin.Context) {
	var req service.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Runs > h.cfg.Simulation.MaxRuns {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Parallelism == 0 {
		req.Parallelism = h.cfg.Simulation.Parallelism
	}
	h.applyWildcardDefaults(&req.BattleRequest)

	key, err := json.Marshal(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	// The job is shared across deduplicated callers; run it under a
	// context that does not die with whichever request started it, or one
	// client's disconnect would fail every waiter.
	ctx := context.WithoutCancel(c.Request.Context())
	v, err, _ := dedupe.SimulationGroup.Do(string(key), func() (interface{}, error) {
		return service.Simulate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, game.ErrConfiguration) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		logging.Error("simulation failed", err, logging.Fields{constants.LogFieldRuns: req.Runs})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrSimulationFailed})
		return
	}
	c.JSON(http.StatusOK, v.(*service.SimulationResult))
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}
