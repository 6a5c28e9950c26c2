package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/infra/http/middleware"
	"github.com/nutrivida/site-backend/internal/infra/supabase"
	"github.com/nutrivida/site-backend/internal/usecase"
)

// AdminLeadHandler expõe os leads crus (forma de linha do banco) para o
// painel. Diferente das rotas públicas, leitura sem banco configurado não
// inventa dados: devolve lista vazia com success=false.
//
// strict controla a política de mutação: com true, falha real do banco vira
// 500 com o erro exposto; com false, mutação resolve para sucesso como nas
// rotas públicas.
type AdminLeadHandler struct {
	gateway usecase.BackendGateway
	strict  bool
	log     zerolog.Logger
}

func NewAdminLeadHandler(gateway usecase.BackendGateway, strict bool, log zerolog.Logger) *AdminLeadHandler {
	return &AdminLeadHandler{gateway: gateway, strict: strict, log: log}
}

func (h *AdminLeadHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.gateway.IsConfigured() {
		writeJSON(w, http.StatusOK, Envelope{
			Success: false,
			Message: "Supabase não configurado",
			Data:    []supabase.LeadRow{},
		})
		return
	}

	rows, err := h.gateway.FetchLeads(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("erro ao listar leads (admin)")
		middleware.RecordSupabaseError("fetch_leads")
		writeError(w, http.StatusInternalServerError, "Erro ao buscar leads")
		return
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: rows})
}

type adminLeadPatchRequest struct {
	ID         json.Number `json:"id"`
	Status     string      `json:"status"`
	Prioridade string      `json:"prioridade"`
}

func (h *AdminLeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req adminLeadPatchRequest
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
		if req.Prioridade != "" {
			patch["prioridade"] = req.Prioridade
		}
		if _, err := h.gateway.UpdateLead(r.Context(), req.ID.String(), patch); err != nil {
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao atualizar lead (admin)")
			middleware.RecordSupabaseError("update_lead")
			if h.strict {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Status atualizado com sucesso"})
}

func (h *AdminLeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao remover lead (admin)")
			middleware.RecordSupabaseError("delete_lead")
			if h.strict {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Lead removido com sucesso"})
}
