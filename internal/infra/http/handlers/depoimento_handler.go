package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/infra/http/middleware"
	"github.com/nutrivida/site-backend/internal/infra/store"
	"github.com/nutrivida/site-backend/internal/usecase"
)

type DepoimentoHandler struct {
	service     *usecase.DataService
	gateway     usecase.BackendGateway
	rateLimiter *RateLimiter
	log         zerolog.Logger
}

func NewDepoimentoHandler(service *usecase.DataService, gateway usecase.BackendGateway, log zerolog.Logger) *DepoimentoHandler {
	return &DepoimentoHandler{
		service:     service,
		gateway:     gateway,
		rateLimiter: NewRateLimiter(10, time.Minute),
		log:         log,
	}
}

// List devolve só depoimentos aprovados. A vitrine do site nunca fica
// vazia: zero aprovados vira o conjunto de demonstração.
func (h *DepoimentoHandler) List(w http.ResponseWriter, r *http.Request) {
	deps, source := h.service.LoadDepoimentos(r.Context())
	if len(deps) == 0 {
		deps = store.SampleDepoimentos()
		source = usecase.SourceFallback
	}
	if source == usecase.SourceFallback {
		middleware.RecordFallback("depoimentos")
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Source:  source,
		Data:    deps,
	})
}

type depoimentoCreateRequest struct {
	Nome       string      `json:"nome"`
	Depoimento string      `json:"depoimento"`
	Avaliacao  json.Number `json:"avaliacao"`
	Token      string      `json:"token"`
}

func (h *DepoimentoHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, Envelope{
			Success: false,
			Error:   "Muitas requisições. Tente novamente em instantes.",
		})
		return
	}

	var req depoimentoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	avaliacao, _ := req.Avaliacao.Int64()
	input := usecase.AddDepoimentoInput{
		Nome:       req.Nome,
		Depoimento: req.Depoimento,
		Avaliacao:  int(avaliacao),
		Token:      req.Token,
	}

	if errs := usecase.ValidateAddDepoimentoInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, Envelope{
			Success: false,
			Error:   errs[0].Error(),
			Details: errs,
		})
		return
	}

	result := h.service.AddDepoimento(r.Context(), input)
	middleware.RecordDepoimentoReceived()
	if !result.Persisted {
		middleware.RecordFallback("depoimentos")
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Depoimento enviado com sucesso! Será publicado após aprovação.",
		Data:    result.Row,
	})
}

func (h *DepoimentoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID         json.Number `json:"id"`
		Nome       string      `json:"nome"`
		Depoimento string      `json:"depoimento"`
		Avaliacao  json.Number `json:"avaliacao"`
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
		patch := map[string]any{}
		if req.Nome != "" {
			patch["nome"] = req.Nome
		}
		if req.Depoimento != "" {
			patch["depoimento"] = req.Depoimento
		}
		if v, err := req.Avaliacao.Int64(); err == nil && v > 0 {
			patch["avaliacao"] = v
		}
		if _, err := h.gateway.UpdateDepoimento(r.Context(), req.ID.String(), patch); err != nil {
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao atualizar depoimento")
			middleware.RecordSupabaseError("update_depoimento")
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Depoimento atualizado com sucesso"})
}

func (h *DepoimentoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
		if err := h.gateway.DeleteDepoimento(r.Context(), req.ID.String()); err != nil {
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao remover depoimento")
			middleware.RecordSupabaseError("delete_depoimento")
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Depoimento removido com sucesso"})
}
