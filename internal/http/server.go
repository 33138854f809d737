package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"github.com/SureshAmal/mmcopilot-mcp/internal/config"
	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
	"github.com/SureshAmal/mmcopilot-mcp/internal/integrations/marketmaya"
	"github.com/SureshAmal/mmcopilot-mcp/internal/integrations/telegram"
	"github.com/SureshAmal/mmcopilot-mcp/internal/service/strategy"
	storepkg "github.com/SureshAmal/mmcopilot-mcp/internal/store"
)

// Server exposes the MarketMaya tools over HTTP. Every tool call is one
// synchronous unit of work: compile, one outbound request, normalize. No
// failure escapes a tool endpoint as anything but the uniform
// {status:"error", message} shape.
type Server struct {
	cfg      config.Config
	store    storepkg.Store
	maya     *marketmaya.Client
	notifier *telegram.Notifier
}

func NewServer(cfg config.Config, store storepkg.Store, maya *marketmaya.Client, notifier *telegram.Notifier) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		maya:     maya,
		notifier: notifier,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(protected chi.Router) {
		protected.Use(s.requireAuth)
		protected.Post("/tools/create_scalping_strategy", s.handleCreateScalpingStrategy)
		protected.Post("/tools/create_strategy", s.handleCreateStrategy)
		protected.Post("/tools/get_my_strategies", s.handleGetMyStrategies)
		protected.Post("/tools/get_point_balance", s.handleGetPointBalance)
		protected.Post("/tools/get_backtest_options", s.handleGetBacktestOptions)
		protected.Get("/events", s.handleListEvents)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Username != s.cfg.AdminUsername || req.Password != s.cfg.AdminPassword {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt, err := s.signToken(req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
		"type":       "Bearer",
	})
}

func (s *Server) handleCreateScalpingStrategy(w http.ResponseWriter, r *http.Request) {
	s.createStrategy(w, r, "create_scalping_strategy")
}

// handleCreateStrategy is the generic variant; it runs the same compiler
// path, so alias and canonical parameter spellings produce identical wire
// records.
func (s *Server) handleCreateStrategy(w http.ResponseWriter, r *http.Request) {
	s.createStrategy(w, r, "create_strategy")
}

func (s *Server) createStrategy(w http.ResponseWriter, r *http.Request, tool string) {
	var intent domain.StrategyIntent
	if err := decodeJSON(r, &intent); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := strategy.CompileIntent(intent)
	if err != nil {
		// Rejected before any network call.
		s.emitEvent(tool, domain.EventStrategyRejected, "invalid_parameter", map[string]interface{}{
			"message": err.Error(),
		})
		writeToolError(w, err.Error())
		return
	}

	resp, sendErr := s.maya.CreateScalpingStrategy(r.Context(), record)
	outcome := marketmaya.Normalize(resp, sendErr)

	if outcome.Kind != domain.OutcomeSuccess {
		message := "Failed to create strategy: " + outcome.Message
		s.emitEvent(tool, domain.EventStrategyRejected, string(outcome.Kind), map[string]interface{}{
			"strategy_name": record.StrategyName,
			"mix_name":      record.MixName,
			"message":       outcome.Message,
			"status_code":   outcome.StatusCode,
		})
		s.notify(fmt.Sprintf("Strategy %q failed: %s", record.StrategyName, outcome.Message))
		writeToolError(w, message)
		return
	}

	s.emitEvent(tool, domain.EventStrategySubmitted, "success", map[string]interface{}{
		"strategy_name": record.StrategyName,
		"mix_name":      record.MixName,
		"strategy_id":   outcome.Identifier,
	})
	s.notify(fmt.Sprintf("Strategy created: %s (%s)", record.StrategyName, record.MixName))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"message":     "Strategy created successfully",
		"strategy_id": outcome.Identifier,
	})
}

func (s *Server) handleGetMyStrategies(w http.ResponseWriter, r *http.Request) {
	var filter domain.StrategyQueryFilter
	if err := decodeJSON(r, &filter); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query, err := strategy.CompileQuery(filter)
	if err != nil {
		writeToolError(w, err.Error())
		return
	}

	resp, sendErr := s.maya.ListStrategies(r.Context(), query)
	outcome := marketmaya.Normalize(resp, sendErr)
	if outcome.Kind != domain.OutcomeSuccess {
		s.emitEvent("get_my_strategies", domain.EventToolInvoked, string(outcome.Kind), nil)
		writeToolError(w, "Failed to fetch strategies: "+outcome.Message)
		return
	}

	data := mapList(outcome.Detail["data"])
	s.emitEvent("get_my_strategies", domain.EventToolInvoked, "success", map[string]interface{}{
		"returned": len(data),
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "success",
		"total":             numberOrZero(outcome.Detail["total"]),
		"strategies":        strategy.ProjectSummaries(data),
		"available_symbols": listOrEmpty(outcome.Detail["symbols"]),
	})
}

func (s *Server) handleGetPointBalance(w http.ResponseWriter, r *http.Request) {
	resp, err := s.maya.PointBalance(r.Context())
	s.passthrough(w, "get_point_balance", resp, err)
}

func (s *Server) handleGetBacktestOptions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StrategyID string `json:"strategy_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.StrategyID) == "" {
		writeToolError(w, "strategy_id is required")
		return
	}

	resp, err := s.maya.BacktestOptions(r.Context(), req.StrategyID)
	s.passthrough(w, "get_backtest_options", resp, err)
}

// passthrough serves remote bodies verbatim for the endpoints that need no
// normalization, while still collapsing failures into the uniform error
// shape.
func (s *Server) passthrough(w http.ResponseWriter, tool string, resp marketmaya.Response, err error) {
	outcome := marketmaya.Normalize(resp, err)
	if outcome.Kind != domain.OutcomeSuccess {
		s.emitEvent(tool, domain.EventToolInvoked, string(outcome.Kind), nil)
		writeToolError(w, outcome.Message)
		return
	}
	s.emitEvent(tool, domain.EventToolInvoked, "success", nil)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Body)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	events := s.store.ListEvents(limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

func (s *Server) emitEvent(tool string, eventType domain.EventType, outcome string, payload map[string]interface{}) {
	s.store.AppendEvent(tool, eventType, outcome, payload)
}

func (s *Server) notify(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.notifier.Notify(ctx, text)
	}()
}

func (s *Server) signToken(subject string) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(12 * time.Hour)
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func mapList(v interface{}) []map[string]interface{} {
	items, ok := v.([]interface{})
	if !ok {
		return []map[string]interface{}{}
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

func listOrEmpty(v interface{}) []interface{} {
	if items, ok := v.([]interface{}); ok {
		return items
	}
	return []interface{}{}
}

func numberOrZero(v interface{}) float64 {
	n, _ := v.(float64)
	return n
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func decodeJSON(r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeToolError is the single exit for tool-level failures: HTTP succeeds,
// the payload carries the uniform error shape.
func writeToolError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "error",
		"message": message,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
