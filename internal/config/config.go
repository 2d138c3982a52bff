package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string `json:"port"`
	DSLDir   string `json:"dslDir"`
	EnumsDir string `json:"enumsDir"`
	OutDir   string `json:"outDir"`

	DBURL     string `json:"dbUrl"`
	AutoApply bool   `json:"autoApply"`

	Strict bool `json:"strict"`
	Serve  bool `json:"serve"`
}

func def() Config {
	return Config{
		Port:     "8080",
		DSLDir:   "jdl",
		EnumsDir: "reference/enums",
		OutDir:   "generated",

		DBURL:     "",
		AutoApply: false,

		Strict: false,
		Serve:  false,
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "1" || v == "true" || v == "yes" {
			return true
		}
		if v == "0" || v == "false" || v == "no" {
			return false
		}
	}
	return fallback
}

func truthy(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "true") || s == "1" || strings.EqualFold(s, "yes")
}

// LoadWithPath reads the JSON config, then applies ENV and flag overrides,
// in that order.
func LoadWithPath(jsonPath string) Config {
	cfg := def()

	// JSON (if the file exists)
	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	// ENV overrides
	cfg.Port = getenv("TESLO_PORT", cfg.Port)
	cfg.DSLDir = getenv("TESLO_DSL_DIR", cfg.DSLDir)
	cfg.EnumsDir = getenv("TESLO_ENUMS_DIR", cfg.EnumsDir)
	cfg.OutDir = getenv("TESLO_OUT_DIR", cfg.OutDir)
	cfg.DBURL = getenv("TESLO_DB_URL", cfg.DBURL)
	cfg.AutoApply = getenvBool("TESLO_AUTO_APPLY", cfg.AutoApply)
	cfg.Strict = getenvBool("TESLO_STRICT", cfg.Strict)
	cfg.Serve = getenvBool("TESLO_SERVE", cfg.Serve)

	// Flags overrides
	configPath := flag.String("config", jsonPath, "Path to config JSON")
	port := flag.String("port", cfg.Port, "HTTP port (with -serve)")
	dsl := flag.String("dsl", cfg.DSLDir, "Path to DSL directory")
	enums := flag.String("enums", cfg.EnumsDir, "Path to enum catalogs directory")
	out := flag.String("out", cfg.OutDir, "Output directory for generated artifacts")
	db := flag.String("db", cfg.DBURL, "Postgres URL (empty = skip DDL apply)")
	auto := flag.String("auto-apply", strconv.FormatBool(cfg.AutoApply), "Apply generated DDL (true/false)")
	strict := flag.String("strict", strconv.FormatBool(cfg.Strict), "Reject malformed field lines (true/false)")
	serve := flag.String("serve", strconv.FormatBool(cfg.Serve), "Serve the metadata API (true/false)")

	flag.Parse()

	// Re-read if a different config file was passed via flag
	if *configPath != jsonPath {
		return LoadWithPath(*configPath)
	}

	cfg.Port = strings.TrimSpace(*port)
	cfg.DSLDir = strings.TrimSpace(*dsl)
	cfg.EnumsDir = strings.TrimSpace(*enums)
	cfg.OutDir = strings.TrimSpace(*out)
	cfg.DBURL = strings.TrimSpace(*db)
	cfg.AutoApply = truthy(*auto)
	cfg.Strict = truthy(*strict)
	cfg.Serve = truthy(*serve)

	return cfg
}
