package main

import (
	"fmt"
	"log"
	"os"

	"teslo/internal/api"
	"teslo/internal/config"
	"teslo/internal/gen"
	"teslo/internal/jdl"
	"teslo/internal/pg"
	"teslo/internal/reference"
	"teslo/internal/render"
)

func main() {
	cfg := config.LoadWithPath("teslo.json")

	opts := jdl.Options{Strict: cfg.Strict}

	// 1. Enum catalogs (optional: a missing directory just means none)
	if st, err := os.Stat(cfg.EnumsDir); err == nil && st.IsDir() {
		extra, err := reference.LoadCatalogs(cfg.EnumsDir)
		if err != nil {
			log.Fatalf("loading enum catalogs: %v", err)
		}
		opts.ExtraEnums = extra
	}

	// 2. Parse the DSL documents
	doc, err := jdl.LoadDir(cfg.DSLDir, opts)
	if err != nil {
		log.Fatalf("loading DSL: %v", err)
	}
	// The parser never treats an empty model as an error; the CLI does.
	if doc.Entities.Len() == 0 {
		log.Fatalf("no entities found under %s", cfg.DSLDir)
	}
	fmt.Printf("Parsed %d entities, %d enums, %d relationships\n",
		doc.Entities.Len(), doc.Enums.Len(), len(doc.Relationships))

	// 3. Assemble render contexts
	model := render.Assemble(doc)
	for _, w := range model.Warnings {
		log.Printf("warning: %s", w)
	}

	// 4. Emit TypeScript artifacts
	written, err := gen.WriteAll(model, cfg.OutDir)
	if err != nil {
		log.Fatalf("writing artifacts: %v", err)
	}
	fmt.Printf("Wrote %d artifacts to %s\n", len(written), cfg.OutDir)

	// 5. Optional: apply generated DDL
	if cfg.DBURL != "" && cfg.AutoApply {
		ddl, err := pg.GenerateDDL(model)
		if err != nil {
			log.Fatalf("generating DDL: %v", err)
		}
		db, err := pg.Open(cfg.DBURL)
		if err != nil {
			log.Fatalf("connecting to Postgres: %v", err)
		}
		defer db.Close()
		if err := pg.ApplyDDL(db, ddl); err != nil {
			log.Fatalf("applying DDL: %v", err)
		}
		fmt.Println("DDL applied")
	}

	// 6. Optional: serve the metadata API
	if cfg.Serve {
		storage := api.NewStorage()
		storage.SetModel(doc, model)
		fmt.Printf("Serving teslo metadata API on :%s...\n", cfg.Port)
		api.RunServer(":"+cfg.Port, storage)
	}
}
