package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/infra/http/middleware"
	"github.com/nutrivida/site-backend/internal/usecase"
)

// LeadHandler atende as rotas públicas de leads. Política: escrita nunca
// falha para o visitante; leitura cai para o cache local quando o banco
// não responde.
type LeadHandler struct {
	service     *usecase.DataService
	gateway     usecase.BackendGateway
	rateLimiter *RateLimiter
	log         zerolog.Logger
}

func NewLeadHandler(service *usecase.DataService, gateway usecase.BackendGateway, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		service:     service,
		gateway:     gateway,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
		log:         log,
	}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, source := h.service.LoadLeads(r.Context())
	if source == usecase.SourceFallback {
		middleware.RecordFallback("leads")
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Source:  source,
		Data:    leads,
	})
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, Envelope{
			Success: false,
			Error:   "Muitas requisições. Tente novamente em instantes.",
		})
		return
	}

	var input usecase.AddLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if errs := usecase.ValidateAddLeadInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, Envelope{
			Success: false,
			Error:   errs[0].Error(),
			Details: errs,
		})
		return
	}

	result := h.service.AddLead(r.Context(), input)
	middleware.RecordLeadReceived()
	if !result.Persisted {
		middleware.RecordFallback("leads")
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Solicitação recebida com sucesso! Entraremos em contato em breve.",
		Data:    result.Row,
	})
}

type leadPatchRequest struct {
	ID     json.Number `json:"id"`
	Status string      `json:"status"`
}

// Update e Delete públicos seguem a mesma política do Create: tentativa
// real quando o banco está configurado, sucesso sintetizado quando não.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req leadPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.ID.String() == "" {
		writeError(w, http.StatusBadRequest, "ID é obrigatório")
		return
	}

	if h.gateway.IsConfigured() {
		patch := map[string]any{}
		if req.Status != "" {
			patch["status"] = req.Status
		}
		if _, err := h.gateway.UpdateLead(r.Context(), req.ID.String(), patch); err != nil {
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao atualizar lead")
			middleware.RecordSupabaseError("update_lead")
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Lead atualizado com sucesso"})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID json.Number `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.ID.String() == "" {
		writeError(w, http.StatusBadRequest, "ID é obrigatório")
		return
	}

	if h.gateway.IsConfigured() {
		if err := h.gateway.DeleteLead(r.Context(), req.ID.String()); err != nil {
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao remover lead")
			middleware.RecordSupabaseError("delete_lead")
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Lead removido com sucesso"})
}
