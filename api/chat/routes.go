package chat

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/study-api/api/types"
)

// RegisterRoutes registers the conversational assistant route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/chat", Post(deps))
}
