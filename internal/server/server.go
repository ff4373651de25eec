package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"calendarbot/internal/agent"
	"calendarbot/internal/gcal"
	"calendarbot/internal/prompts"

	"github.com/gorilla/websocket"

	"golang.org/x/oauth2"
)

// WebSocketMessage defines the structure for incoming JSON messages from the frontend.
type WebSocketMessage struct {
	Message string `json:"message"`
	Action  string `json:"action"`
	Reset   bool   `json:"reset"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all connections
	},
}

// Options configures the HTTP surface.
type Options struct {
	// SessionSecret enables session checks on /ws when non-empty.
	SessionSecret string

	// OnToken is called with the exchanged OAuth token so the caller can
	// persist it and authenticate the calendar client.
	OnToken func(ctx context.Context, tok *oauth2.Token) error
}

type oauthHandler struct {
	oauthConfig *oauth2.Config
	opts        Options
}

func newOauthHandler(oauth2Config *oauth2.Config, opts Options) oauthHandler {
	return oauthHandler{
		oauthConfig: oauth2Config,
		opts:        opts,
	}
}

func (o oauthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/oauth/login/":
		o.handleLogin(w, r)
	case "/oauth/oauth2callback/":
		o.handleCallback(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (o *oauthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	// State can be a random string to protect against CSRF
	url := o.oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (o *oauthHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}
	token, err := gcal.ExchangeCode(ctx, o.oauthConfig, code)
	if err != nil {
		http.Error(w, "Token exchange error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if o.opts.OnToken != nil {
		if err := o.opts.OnToken(ctx, token); err != nil {
			http.Error(w, "Could not store token: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	if o.opts.SessionSecret != "" {
		session, err := issueSessionToken(o.opts.SessionSecret, "calendarbot-user", time.Now())
		if err != nil {
			http.Error(w, "Could not create session: "+err.Error(), http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    session,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	fmt.Fprint(w, "Google Calendar connected. You can close this window and start chatting.")
}

// New builds the HTTP handler: websocket chat, quick-action prompts, and the
// OAuth login flow when a config is supplied.
func New(calendarAgent *agent.Agent, oauthConfig *oauth2.Config, opts Options) http.Handler {
	mux := http.NewServeMux()

	// API to get quick actions
	mux.HandleFunc("/prompts", handleQuickActions)

	// Websocket route
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleConnections(w, r, calendarAgent, opts.SessionSecret)
	})

	if oauthConfig != nil {
		mux.Handle("/oauth/", newOauthHandler(oauthConfig, opts))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "index.html")
	})

	return mux
}

func handleConnections(w http.ResponseWriter, r *http.Request, calendarAgent *agent.Agent, sessionSecret string) {
	if sessionSecret != "" {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || validateSessionToken(sessionSecret, cookie.Value) != nil {
			http.Error(w, "Sign in via /oauth/login/ first", http.StatusUnauthorized)
			return
		}
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer ws.Close()

	log.Println("Client connected")

	for {
		// Read message from browser
		_, msgBytes, err := ws.ReadMessage()
		if err != nil {
			log.Println("Client disconnected:", err)
			break
		}

		// Unmarshal the JSON message
		var msg WebSocketMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			log.Println("Invalid JSON message:", err)
			continue
		}

		if msg.Reset {
			calendarAgent.Reset()
			if err := ws.WriteMessage(websocket.TextMessage, []byte("Conversation cleared.")); err != nil {
				log.Println("Write error:", err)
				break
			}
			continue
		}

		userInput := composeInput(msg)
		if userInput == "" {
			if err := ws.WriteMessage(websocket.TextMessage, []byte("Please type a request.")); err != nil {
				log.Println("Write error:", err)
				break
			}
			continue
		}

		response, err := calendarAgent.Run(r.Context(), userInput)
		if err != nil {
			log.Printf("Agent Error: %v\n", err)
			if writeErr := ws.WriteMessage(websocket.TextMessage, []byte("Sorry, I encountered an error.")); writeErr != nil {
				log.Println("Write error:", writeErr)
			}
			continue
		}

		if err := ws.WriteMessage(websocket.TextMessage, []byte(response)); err != nil {
			log.Println("Write error:", err)
			break
		}
	}
}

// composeInput merges a quick action with the typed message; an unknown
// action name falls back to the plain message.
func composeInput(msg WebSocketMessage) string {
	actionText, ok := prompts.QuickActions[msg.Action]
	if !ok && msg.Action != "" && msg.Action != prompts.DefaultAction {
		log.Println("Invalid quick action received:", msg.Action)
	}

	switch {
	case actionText != "" && msg.Message != "":
		return fmt.Sprintf("%s\n\nMy specific focus for this request is: \"%s\"", actionText, msg.Message)
	case actionText != "":
		return actionText
	default:
		return msg.Message
	}
}

func handleQuickActions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	names := make([]string, 0, len(prompts.QuickActions)+1)
	names = append(names, prompts.DefaultAction)

	for name := range prompts.QuickActions {
		if name == prompts.DefaultAction {
			continue
		}
		names = append(names, name)
	}
	if err := json.NewEncoder(w).Encode(names); err != nil {
		log.Println("Failed to encode quick actions:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
