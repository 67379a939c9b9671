package api

import (
	"net/http"

	"pokerquest/internal/constants"
	"pokerquest/internal/version"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api plus the health and version
// probes.
func RegisterRoutes(r *gin.Engine, h *EncounterHandler) {
	r.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group(constants.RouteAPIPrefix)
	api.GET(constants.RouteVersion, func(c *gin.Context) {
		c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
		c.JSON(http.StatusOK, gin.H{"version": version.Version})
	})
	api.GET(constants.RouteStages, h.ListStages)
	api.GET(constants.RouteEncounters, h.ListEncounters)
	api.POST(constants.RouteEncounters, h.CreateEncounter)
	api.GET(constants.RouteEncounterByUUID, h.GetEncounter)
	api.DELETE(constants.RouteEncounterByUUID, h.DeleteEncounter)
	api.POST(constants.RouteEncounterAttack, h.SubmitAttack)
	api.POST(constants.RouteEncounterSwap, h.SwapCards)
	api.POST(constants.RouteEncounterResign, h.ResignEncounter)
}
