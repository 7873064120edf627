package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-floodlens/chat"
	"go-floodlens/dataset"
	"go-floodlens/handlers"
)

const welcomeMessage = "I have sample monthly data on Assam floods and landslides (2021-23). Ask me questions about the data (e.g., 'show severe floods in Barpeta during 2023', 'landslide risk in Dima Hasao', 'rainfall above 500mm in July')."

func SetupRouter(orch *chat.Orchestrator, store *dataset.Store) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": welcomeMessage,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "records": store.Len()})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// api routes
	api := r.Group("/api/floodlens")
	{
		api.POST("/query", func(c *gin.Context) {
			handlers.HandleQuery(c, orch)
		})
		api.GET("/active", func(c *gin.Context) {
			handlers.GetActive(c, orch)
		})
		api.GET("/records", func(c *gin.Context) {
			handlers.GetDatasetInfo(c, store)
		})
	}

	return r
}
