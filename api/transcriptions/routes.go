package transcriptions

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/study-api/api/types"
)

// RegisterRoutes registers all transcription record routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List(deps))
	router.DELETE("/delete", Delete(deps))
	router.GET("/:id", Get(deps))
	router.GET("/:id/watch", Watch(deps))
}
