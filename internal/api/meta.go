package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teslo/internal/jdl"
	"teslo/internal/render"
)

// ===== META HANDLERS =====

type metaField struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	TSType  string   `json:"tsType"`
	IsEnum  bool     `json:"isEnum,omitempty"`
	Rules   []string `json:"rules,omitempty"`
	Comment string   `json:"comment,omitempty"`
}

type metaRelationship struct {
	Type        string `json:"type"`
	FieldName   string `json:"fieldName,omitempty"`
	OtherEntity string `json:"otherEntity"`
	OtherPlural string `json:"otherEntityPlural"`
}

type metaEntity struct {
	Name          string             `json:"name"`
	Audit         bool               `json:"audit,omitempty"`
	Fields        []metaField        `json:"fields"`
	Relationships []metaRelationship `json:"relationships,omitempty"`
}

func metaFromContext(ec *render.EntityContext) metaEntity {
	out := metaEntity{Name: ec.Name, Audit: ec.Audit == jdl.AuditEnabled}
	for _, f := range ec.Fields {
		out.Fields = append(out.Fields, metaField{
			Name:    f.Name,
			Type:    f.Type,
			TSType:  f.TSType,
			IsEnum:  f.IsEnum,
			Rules:   append([]string(nil), f.ValidateRules...),
			Comment: f.Comment,
		})
	}
	for _, r := range ec.Relationships {
		out.Relationships = append(out.Relationships, metaRelationship{
			Type:        string(r.Type),
			FieldName:   r.FieldName,
			OtherEntity: r.OtherEntityName,
			OtherPlural: r.OtherEntityNamePlural,
		})
	}
	return out
}

func MetaListHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		model, run := storage.Snapshot()
		if model == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No model parsed yet"})
			return
		}
		entities := make([]string, 0, len(model.Entities))
		for _, e := range model.Entities {
			entities = append(entities, e.Name)
		}
		enums := make([]string, 0, len(model.Enums))
		for _, e := range model.Enums {
			enums = append(enums, e.Name)
		}
		c.JSON(http.StatusOK, gin.H{"run": run, "entities": entities, "enums": enums})
	}
}

func MetaEntityHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		model, _ := storage.Snapshot()
		if model == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No model parsed yet"})
			return
		}
		name := c.Param("entity")
		for _, e := range model.Entities {
			if e.Name == name {
				c.JSON(http.StatusOK, metaFromContext(e))
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Entity not found"})
	}
}

func EnumHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		model, _ := storage.Snapshot()
		if model == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No model parsed yet"})
			return
		}
		name := c.Param("name")
		for _, e := range model.Enums {
			if e.Name == name {
				c.JSON(http.StatusOK, gin.H{"name": e.Name, "values": e.Values})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Enum not found"})
	}
}

func RelationshipsHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		model, run := storage.Snapshot()
		if model == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No model parsed yet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"run": run, "relationships": model.Relationships})
	}
}
