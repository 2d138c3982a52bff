package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teslo/internal/gen"
)

// ArtifactHandler renders one artifact on the fly: entity contexts first,
// enum contexts as fallback. Handy for previewing generator output without
// touching the output directory.
func ArtifactHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		model, run := storage.Snapshot()
		if model == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No model parsed yet"})
			return
		}
		name := c.Param("name")

		for _, ec := range model.Entities {
			if ec.Name != name {
				continue
			}
			b, err := gen.RenderEntity(ec)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Header("X-Teslo-Run", run)
			c.Data(http.StatusOK, "application/typescript", b)
			return
		}
		for _, ec := range model.Enums {
			if ec.Name != name {
				continue
			}
			b, err := gen.RenderEnum(ec)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Header("X-Teslo-Run", run)
			c.Data(http.StatusOK, "application/typescript", b)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "No entity or enum with that name"})
	}
}
