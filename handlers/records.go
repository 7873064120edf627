package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-floodlens/chat"
	"go-floodlens/dataset"
	"go-floodlens/mapview"
	"go-floodlens/types"
)

// GetActive returns the markers for the currently displayed filtered result.
func GetActive(c *gin.Context, orch *chat.Orchestrator) {
	records := orch.Active()
	c.JSON(http.StatusOK, gin.H{
		"matched": len(records),
		"markers": mapview.BuildMarkers(records),
	})
}

// GetDatasetInfo returns coverage metadata about the loaded dataset.
func GetDatasetInfo(c *gin.Context, store *dataset.Store) {
	years := map[string]bool{}
	districts := map[string]bool{}
	for _, rec := range store.Records() {
		if y, ok := rec.Field(types.FieldYear); ok && y != "" {
			years[y] = true
		}
		if d, ok := rec.Field(types.FieldDistrict); ok && d != "" {
			districts[d] = true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"records":   store.Len(),
		"years":     len(years),
		"districts": len(districts),
		"fields":    types.SchemaFields,
	})
}
