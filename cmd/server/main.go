package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/mklimuk/scratchpad-pilot/pkg/ai"
	"github.com/mklimuk/scratchpad-pilot/pkg/api"
	"github.com/mklimuk/scratchpad-pilot/pkg/archive"
	"github.com/mklimuk/scratchpad-pilot/pkg/config"
	"github.com/mklimuk/scratchpad-pilot/pkg/db"
	"github.com/mklimuk/scratchpad-pilot/pkg/export"
	"github.com/mklimuk/scratchpad-pilot/pkg/identity"
	"github.com/mklimuk/scratchpad-pilot/pkg/integration/discord"
	"github.com/mklimuk/scratchpad-pilot/pkg/integration/telegram"
	"github.com/mklimuk/scratchpad-pilot/pkg/process"
	"github.com/mklimuk/scratchpad-pilot/pkg/prompt"
	"github.com/mklimuk/scratchpad-pilot/pkg/ratelimit"
)

func main() {
	dbPath := flag.String("db", "scratchpad-pilot.db", "Path to SQLite DB")
	port := flag.String("port", "8080", "HTTP Port")
	aiProvider := flag.String("ai-provider", "openai", "AI provider: openai, moonshot or gemini")
	exportDir := flag.String("export-dir", "", "Directory for markdown exports (disabled when empty)")
	exportGit := flag.Bool("export-git", false, "Commit and push exports to the git repo at export-dir")
	flag.Parse()

	cfg := config.Load()

	// Initialize DB
	database, err := db.NewDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer database.Close()

	if err := database.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}

	repo := db.NewRepository(database)

	// Initialize AI Client
	var aiClient ai.Generator
	var model string
	switch *aiProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("OPENAI_API_KEY environment variable is required when using openai provider")
		}
		client := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.AIModel)
		aiClient = client
		model = client.Model()
	case "moonshot":
		if cfg.MoonshotAPIKey == "" {
			log.Fatal("MOONSHOT_API_KEY environment variable is required when using moonshot provider")
		}
		client := ai.NewMoonshotClient(cfg.MoonshotAPIKey, cfg.AIModel)
		aiClient = client
		model = client.Model()
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY environment variable is required when using gemini provider")
		}
		ctx := context.Background()
		geminiClient, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.AIModel)
		if err != nil {
			log.Fatalf("Failed to create AI client: %v", err)
		}
		defer geminiClient.Close()
		aiClient = geminiClient
		model = geminiClient.Model()
	default:
		log.Fatalf("Unknown AI provider: %s", *aiProvider)
	}

	// Core services
	users := identity.Static(cfg.UserID)
	arch := archive.New(repo, repo, users)
	catalog := prompt.NewCatalog(repo)
	processor := process.NewProcessor(aiClient, catalog, *aiProvider, model)
	limiter := ratelimit.NewLimiter(cfg.ProcessRPS, cfg.ProcessBurst)

	handler := &api.Handler{
		Repo:          repo,
		Archive:       arch,
		Catalog:       catalog,
		Processor:     processor,
		Limiter:       limiter,
		DefaultUserID: cfg.UserID,
	}

	// Optional markdown export
	if *exportDir != "" {
		var gitManager *export.GitManager
		if *exportGit {
			gitManager = export.NewGitManager(*exportDir)
		}
		handler.Exporter = export.NewExporter(repo, *exportDir, gitManager)
	}

	router := api.NewRouter(handler)

	// Initialize Discord Bot (Optional)
	if cfg.DiscordToken != "" {
		bot, err := discord.NewBot(cfg.DiscordToken, repo, arch)
		if err != nil {
			log.Printf("Failed to create Discord bot: %v", err)
		} else {
			if err := bot.Start(); err != nil {
				log.Printf("Failed to start Discord bot: %v", err)
			} else {
				log.Println("Discord Bot started")
				defer bot.Stop()
			}
		}
	}

	// Initialize Telegram Bot (Optional)
	if cfg.TelegramToken != "" {
		tgBot, err := telegram.NewBot(cfg.TelegramToken, repo, arch)
		if err != nil {
			log.Printf("Failed to create Telegram bot: %v", err)
		} else {
			if err := tgBot.Start(); err != nil {
				log.Printf("Failed to start Telegram bot: %v", err)
			} else {
				log.Println("Telegram Bot started")
				defer tgBot.Stop()
			}
		}
	}

	log.Printf("Starting server on :%s", *port)
	if err := http.ListenAndServe(":"+*port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
