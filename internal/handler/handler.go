package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/finsight/finsight/internal/agent"
	"github.com/finsight/finsight/internal/analytics"
	"github.com/finsight/finsight/internal/insight"
	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/query"
	"github.com/finsight/finsight/internal/snapshot"
)

// Handler serves the HTTP API
type Handler struct {
	store      *snapshot.Store
	dispatcher *insight.Dispatcher
	responder  agent.Responder // nil when no API key is configured
	log        *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(store *snapshot.Store, dispatcher *insight.Dispatcher, responder agent.Responder, log *logrus.Logger) *Handler {
	return &Handler{store: store, dispatcher: dispatcher, responder: responder, log: log}
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse is the reply of POST /chat
type ChatResponse struct {
	RequestID        string                 `json:"request_id"`
	Response         string                 `json:"response"`
	HasVisualization bool                   `json:"has_visualization"`
	ChartType        models.InsightCategory `json:"chart_type,omitempty"`
	ChartData        any                    `json:"chart_data,omitempty"`
}

// Summary serves the dashboard summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	s := h.store.Current()
	trend := analytics.NetWorthTrend(s)

	writeJSON(w, http.StatusOK, map[string]any{
		"user_info": s.UserInfo(),
		"financial_summary": map[string]any{
			"bank_balance":      s.TotalBankBalance(),
			"net_worth":         s.CurrentNetWorth().NetWorth,
			"total_investments": s.TotalMutualFundValue() + s.TotalStockValue(),
			"total_debt":        s.TotalLoanOutstanding() + s.TotalCreditCardDebt(),
			"credit_score":      s.Score().Score,
		},
		"net_worth_series":    trend.Series,
		"recent_transactions": s.RecentTransactions(),
		"recommendations":     s.Advice(),
	})
}

// Chat answers a free-text question over the snapshot
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		writeError(w, http.StatusBadRequest, "no query provided")
		return
	}
	if h.responder == nil {
		writeError(w, http.StatusServiceUnavailable, "responder not configured, set ANTHROPIC_API_KEY")
		return
	}

	requestID := uuid.NewString()
	s := h.store.Current()
	data := query.SelectRelevantData(s, req.Query)

	answer, err := h.responder.Respond(r.Context(), req.Query, data)
	if err != nil {
		h.log.Errorf("Chat %s failed: %v", requestID, err)
		writeError(w, http.StatusBadGateway, "failed to answer query")
		return
	}

	resp := ChatResponse{RequestID: requestID, Response: answer}
	if category, ok := query.Classify(req.Query); ok {
		if result := h.dispatcher.Generate(category); result.Recognized {
			resp.HasVisualization = true
			resp.ChartType = category
			resp.ChartData = result.Insight
		}
	}

	h.log.Infof("Chat %s answered, visualization=%v", requestID, resp.HasVisualization)
	writeJSON(w, http.StatusOK, resp)
}

// Insight serves a single insight report by category
func (h *Handler) Insight(w http.ResponseWriter, r *http.Request) {
	category := models.InsightCategory(mux.Vars(r)["type"])
	result := h.dispatcher.Generate(category)
	if !result.Recognized {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Data serves one raw data group from the snapshot
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	s := h.store.Current()

	var payload any
	switch mux.Vars(r)["type"] {
	case "user_info":
		payload = s.UserInfo()
	case "bank_accounts":
		payload = s.BankAccounts()
	case "investments":
		payload = s.Investments
	case "loans":
		payload = s.AllLoans()
	case "credit_score":
		payload = s.Score()
	case "spending":
		payload = s.SpendingSummary()
	case "goals":
		payload = s.Goals()
	case "net_worth":
		payload = s.CurrentNetWorth()
	case "recommendations":
		payload = s.Advice()
	default:
		writeError(w, http.StatusBadRequest, "unknown data type")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
