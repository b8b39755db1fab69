package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"crm-assistant/contract"
	"crm-assistant/intent"
	"crm-assistant/internal"
	"crm-assistant/jobs"
	"crm-assistant/kb"
	"crm-assistant/leads"
	"crm-assistant/observability"
	"crm-assistant/repositories"
	"crm-assistant/response"
	"crm-assistant/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the session lifecycle, and
// centralizes error reporting so that defers always execute before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = blugeWriter.Close()
	}()

	// 3. Core pipeline
	overrides, err := intent.DefaultOverrides()
	if err != nil {
		return fmt.Errorf("override rules failed: %w", err)
	}
	stats := observability.NewStatsManager(log)
	sessions := repositories.NewSessionRepository(db, log, config.LimitMessages)
	transcripts := repositories.NewTranscriptIndex(blugeWriter, log)
	book := demoLeadBook{}

	service := services.NewAssistantService(
		log,
		intent.NewClassifier(log, overrides),
		response.NewGenerator(response.DefaultTemplates(), log),
		kb.NewRetriever(kb.DefaultArticles(), config.EmbeddingDim, log),
		overrides,
		sessions,
		transcripts,
		stats,
		book,
		config.TranscriptSearchTop,
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background runtime
	go stats.Listen(ctx)
	sup := jobs.NewSupervisor(log)
	sup.Add(
		jobs.NewMonitorWorker(log, stats, config.MonitorInterval),
		jobs.NewSegmentationWorker(log, book, stats, config.SegmentInterval, config.SegmentCount),
		jobs.NewCRMSyncWorker(log, stats, func(ctx context.Context) error {
			snapshot := stats.GetLatest()
			log.Info("CRM sync batch pushed",
				"messages", snapshot.MessagesProcessed,
				"fallbacks", snapshot.Fallbacks,
			)
			return nil
		}, config.SyncInterval, config.SyncMaxAttempts, config.SyncBaseDelay),
	)
	go sup.Run(ctx)
	defer sup.Stop()

	// 6. Interactive loop
	return chatLoop(ctx, service)
}

func chatLoop(ctx context.Context, service *services.AssistantService) error {
	sessionID := uuid.New().String()
	userID := "operator"

	color.New(color.FgGreen).Println("CRM assistant ready. Type a message, /search <query>, or /quit.")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			return nil
		}
		if query, ok := strings.CutPrefix(line, "/search "); ok {
			hits, err := service.SearchTranscripts(ctx, sessionID, query)
			if err != nil {
				color.Red.Println("search failed:", err)
				continue
			}
			for _, hit := range hits {
				fmt.Printf("  [%s] %s\n", hit.SessionID, hit.Content)
			}
			continue
		}

		resp, err := service.HandleMessage(ctx, contract.ChatRequest{
			Content:       line,
			SessionID:     sessionID,
			UserID:        userID,
			Authenticated: true,
		})
		if err != nil {
			color.Red.Println(err)
			continue
		}

		color.Cyan.Println(resp.Content)
		fmt.Printf("  intent=%s confidence=%d%% cluster=%d lang=%s\n",
			resp.Intent, resp.Confidence, resp.Cluster, resp.Language)
		if resp.LeadScore != nil {
			fmt.Printf("  lead score=%.1f (%s)\n", *resp.LeadScore, leads.Category(*resp.LeadScore))
		}
	}
}

// demoLeadBook stands in for the CRM profile backend in local runs.
type demoLeadBook struct{}

func (demoLeadBook) FeaturesFor(_ context.Context, _ string) (leads.Features, bool) {
	return leads.Features{
		Engagement:  65,
		CompanySize: 3,
		BudgetFit:   70,
		Authority:   55,
		NeedUrgency: 60,
		Timeline:    50,
	}, true
}

func (b demoLeadBook) LeadFeatures(_ context.Context) ([]leads.Features, error) {
	base := []leads.Features{
		{Engagement: 90, CompanySize: 5, BudgetFit: 85, Authority: 80, NeedUrgency: 90, Timeline: 85},
		{Engagement: 70, CompanySize: 3, BudgetFit: 60, Authority: 55, NeedUrgency: 65, Timeline: 60},
		{Engagement: 45, CompanySize: 2, BudgetFit: 50, Authority: 40, NeedUrgency: 35, Timeline: 45},
		{Engagement: 15, CompanySize: 1, BudgetFit: 20, Authority: 10, NeedUrgency: 15, Timeline: 10},
		{Engagement: 85, CompanySize: 4, BudgetFit: 80, Authority: 75, NeedUrgency: 85, Timeline: 75},
		{Engagement: 25, CompanySize: 1, BudgetFit: 30, Authority: 20, NeedUrgency: 25, Timeline: 30},
	}
	return base, nil
}

var _ services.LeadFeatureSource = demoLeadBook{}
var _ jobs.FeatureSource = demoLeadBook{}
