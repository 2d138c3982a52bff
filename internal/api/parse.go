package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"teslo/internal/jdl"
	"teslo/internal/render"
)

// ParseHandler accepts raw DSL text in the request body, re-parses the model
// and swaps it into storage. `?strict=true` rejects malformed field lines
// instead of dropping them. An empty or entity-less document is a client
// error here; the parser itself stays permissive.
func ParseHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read body"})
			return
		}

		opts := jdl.Options{Strict: strings.EqualFold(c.Query("strict"), "true")}
		doc, err := jdl.Parse(string(body), opts)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if doc.Entities.Len() == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No entities in document"})
			return
		}

		model := render.Assemble(doc)
		run := storage.SetModel(doc, model)

		warnings := make([]string, 0, len(model.Warnings))
		for _, w := range model.Warnings {
			warnings = append(warnings, w.String())
		}
		c.JSON(http.StatusOK, gin.H{
			"run":           run,
			"entities":      len(model.Entities),
			"enums":         len(model.Enums),
			"relationships": len(model.Relationships),
			"warnings":      warnings,
		})
	}
}
