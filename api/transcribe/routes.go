package transcribe

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/study-api/api/types"
)

// RegisterRoutes registers the transcription pipeline route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/transcribe", Post(deps))
}
