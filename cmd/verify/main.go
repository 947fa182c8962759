package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"jarvis-assistant-be/internal/config"
	"jarvis-assistant-be/pkg/database"

	"github.com/fatih/color"
)

// Startup verification: checks environment, Ollama, required models, and the
// database before the server is started.

func printHeader(text string) {
	fmt.Printf("\n%s\n  %s\n%s\n\n", strings.Repeat("=", 60), text, strings.Repeat("=", 60))
}

func checkEnvFile() bool {
	fmt.Println("Checking environment configuration...")
	if _, err := os.Stat(".env"); err == nil {
		color.Green("  ✓ .env file found")
		return true
	}
	color.Yellow("  ! .env file not found, relying on system environment")
	return true
}

func checkOllama(cfg *config.Config) bool {
	fmt.Println("Checking Ollama connection...")

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(cfg.Ai.OllamaBaseURL + "/api/tags")
	if err != nil {
		color.Red("  ✗ Ollama not running at %s", cfg.Ai.OllamaBaseURL)
		fmt.Println("    → Start with: ollama serve")
		return false
	}
	defer resp.Body.Close()

	color.Green("  ✓ Ollama is running at %s", cfg.Ai.OllamaBaseURL)

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		color.Yellow("  ! Could not read model list: %v", err)
		return true
	}

	ok := true
	for _, model := range []string{cfg.Ai.OllamaModel, cfg.Ai.OllamaEmbeddingModel} {
		if hasModel(tags.Models, model) {
			color.Green("  ✓ model %s available", model)
		} else {
			color.Red("  ✗ model %s not pulled", model)
			fmt.Printf("    → ollama pull %s\n", model)
			ok = false
		}
	}
	return ok
}

func hasModel(models []struct {
	Name string `json:"name"`
}, name string) bool {
	for _, m := range models {
		if m.Name == name || strings.HasPrefix(m.Name, name+":") {
			return true
		}
	}
	return false
}

func checkDatabase(cfg *config.Config) bool {
	fmt.Println("Checking database...")

	if cfg.Index.Store == "memory" {
		color.Green("  ✓ memory vector store configured, no database needed")
		return true
	}
	if cfg.Database.Connection == "" {
		color.Red("  ✗ DB_CONNECTION_STRING not set")
		return false
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("  ✗ Cannot connect to Postgres: %v", err)
		return false
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		color.Red("  ✗ Postgres ping failed")
		return false
	}
	color.Green("  ✓ Postgres reachable")
	return true
}

func main() {
	printHeader("Jarvis - Startup Verification")

	cfg := config.Load()

	checks := []struct {
		name string
		fn   func() bool
	}{
		{"Environment Configuration", checkEnvFile},
		{"Ollama Server", func() bool { return checkOllama(cfg) }},
		{"Database", func() bool { return checkDatabase(cfg) }},
	}

	passed := 0
	results := make(map[string]bool, len(checks))
	for _, check := range checks {
		results[check.name] = check.fn()
		if results[check.name] {
			passed++
		}
		fmt.Println()
	}

	printHeader("Verification Summary")
	for _, check := range checks {
		if results[check.name] {
			color.Green("✓ PASS  %s", check.name)
		} else {
			color.Red("✗ FAIL  %s", check.name)
		}
	}
	fmt.Printf("\n%d/%d checks passed\n\n", passed, len(checks))

	if passed < len(checks) {
		os.Exit(1)
	}

	fmt.Println("Start the system:")
	fmt.Println("  Terminal 1: ollama serve")
	fmt.Println("  Terminal 2: go run ./cmd/rest")
	fmt.Println("  Terminal 3: go run ./cmd/seed")
	fmt.Println()
}
