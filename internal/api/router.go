// api/router.go
package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the metadata API over the given storage.
func NewRouter(storage *Storage) *gin.Engine {
	r := gin.Default()

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/meta", MetaListHandler(storage))
		apiGroup.GET("/meta/:entity", MetaEntityHandler(storage))
		apiGroup.GET("/enums/:name", EnumHandler(storage))
		apiGroup.GET("/relationships", RelationshipsHandler(storage))
		apiGroup.GET("/artifacts/:name", ArtifactHandler(storage))
		apiGroup.POST("/parse", ParseHandler(storage))
	}
	return r
}

func RunServer(addr string, storage *Storage) {
	_ = NewRouter(storage).Run(addr)
}
