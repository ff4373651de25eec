package main

import (
	"context"
	"log"
	"net/http"

	"calendarbot/internal/agent"
	"calendarbot/internal/config"
	"calendarbot/internal/gcal"
	"calendarbot/internal/prompts"
	"calendarbot/internal/rules"
	"calendarbot/internal/server"
	meetingtools "calendarbot/internal/tools/meetings"

	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/oauth2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	// Initialize LLM
	llm, err := openai.New(
		openai.WithBaseURL(cfg.ModelBaseURL),
		openai.WithModel(cfg.ModelName),
	)
	if err != nil {
		log.Fatal("Failed to initialize LLM:", err)
	}

	ctx := context.Background()

	var oauthConf *oauth2.Config
	if cfg.CalendarEnabled {
		secret, err := gcal.LoadClientSecret(cfg.CredentialsJSON, cfg.CredentialsFile)
		if err != nil {
			log.Fatal("Failed to read Google credentials:", err)
		}
		if secret != nil {
			oauthConf, err = gcal.OAuthConfig(secret, cfg.OAuthRedirectURL)
			if err != nil {
				log.Fatal("Failed to parse Google credentials:", err)
			}
		} else {
			log.Println("No Google credentials configured, calendar integration disabled")
		}
	}

	tok, err := gcal.LoadToken(cfg.TokenJSON, cfg.TokenFile)
	if err != nil {
		log.Println("Ignoring stored Google token:", err)
		tok = nil
	}

	client, err := gcal.New(ctx, oauthConf, tok, gcal.Options{
		CalendarID:        cfg.CalendarID,
		SendNotifications: cfg.SendNotifications,
		AddMeetLink:       cfg.AddMeetLink,
		ReminderMinutes:   cfg.ReminderMinutes,
		MaxResults:        cfg.MaxResults,
		Timeout:           cfg.ProviderTimeout,
	})
	if err != nil {
		log.Fatal("Failed to build calendar client:", err)
	}
	if oauthConf != nil && !client.IsEnabled() {
		log.Println("Google Calendar not authorized yet, visit /oauth/login/ to connect")
	}

	// Wire tools to the agent
	engine := rules.NewEngine(client)
	svc := meetingtools.NewService(client, engine, cfg.ConflictDetection)
	calendarAgent, err := agent.New(llm, prompts.SystemMessage, meetingtools.Tools(svc),
		agent.WithMaxIterations(cfg.MaxToolIterations))
	if err != nil {
		log.Fatal("Failed to build agent:", err)
	}

	handler := server.New(calendarAgent, oauthConf, server.Options{
		SessionSecret: cfg.SessionSecret,
		OnToken: func(ctx context.Context, newTok *oauth2.Token) error {
			if err := gcal.SaveToken(cfg.TokenFile, newTok); err != nil {
				return err
			}
			return client.Authenticate(ctx, oauthConf, newTok)
		},
	})

	log.Printf("Server starting on http://localhost%s\n", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
