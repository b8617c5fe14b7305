package insights

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/study-api/api/types"
)

// RegisterRoutes registers the artifact generation route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/insights", Post(deps))
}
