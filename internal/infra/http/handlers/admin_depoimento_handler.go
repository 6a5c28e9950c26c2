package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/infra/http/middleware"
	"github.com/nutrivida/site-backend/internal/infra/supabase"
	"github.com/nutrivida/site-backend/internal/usecase"
)

type AdminDepoimentoHandler struct {
	gateway usecase.BackendGateway
	strict  bool
	log     zerolog.Logger
}

func NewAdminDepoimentoHandler(gateway usecase.BackendGateway, strict bool, log zerolog.Logger) *AdminDepoimentoHandler {
	return &AdminDepoimentoHandler{gateway: gateway, strict: strict, log: log}
}

// List devolve todos os depoimentos, aprovados ou não, na forma de linha.
func (h *AdminDepoimentoHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.gateway.IsConfigured() {
		writeJSON(w, http.StatusOK, Envelope{
			Success: false,
			Message: "Supabase não configurado",
			Data:    []supabase.DepoimentoRow{},
		})
		return
	}

	rows, err := h.gateway.FetchDepoimentos(r.Context(), false)
	if err != nil {
		h.log.Error().Err(err).Msg("erro ao listar depoimentos (admin)")
		middleware.RecordSupabaseError("fetch_depoimentos")
		writeError(w, http.StatusInternalServerError, "Erro ao buscar depoimentos")
		return
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: rows})
}

type adminDepoimentoCreateRequest struct {
	Nome     string      `json:"nome"`
	Texto    string      `json:"texto"`
	Estrelas json.Number `json:"estrelas"`
}

// Create insere um depoimento já aprovado (cadastro manual pelo painel).
func (h *AdminDepoimentoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req adminDepoimentoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	estrelas, _ := req.Estrelas.Int64()
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Texto) == "" || estrelas == 0 {
		writeError(w, http.StatusBadRequest, "Campos obrigatórios: nome, texto, estrelas")
		return
	}

	row := supabase.DepoimentoRow{
		Token:      "admin_" + uuid.NewString(),
		Nome:       strings.TrimSpace(req.Nome),
		Depoimento: strings.TrimSpace(req.Texto),
		Avaliacao:  int(estrelas),
		Aprovado:   true,
	}

	if h.gateway.IsConfigured() {
		inserted, err := h.gateway.InsertDepoimento(r.Context(), row)
		if err == nil {
			writeJSON(w, http.StatusOK, Envelope{
				Success: true,
				Message: "Depoimento cadastrado com sucesso",
				Data:    inserted,
			})
			return
		}
		h.log.Error().Err(err).Msg("erro ao inserir depoimento (admin)")
		middleware.RecordSupabaseError("insert_depoimento")
		if h.strict {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	agora := time.Now()
	row.ID = agora.UnixMilli()
	row.CreatedAt = agora.UTC().Format(time.RFC3339)

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Depoimento cadastrado com sucesso",
		Data:    row,
	})
}

type adminDepoimentoPatchRequest struct {
	ID       json.Number `json:"id"`
	Nome     string      `json:"nome"`
	Texto    string      `json:"texto"`
	Estrelas json.Number `json:"estrelas"`
	Aprovado *bool       `json:"aprovado"`
}

// Update cobre a moderação: o caso comum é alternar só o campo aprovado.
func (h *AdminDepoimentoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req adminDepoimentoPatchRequest
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
		if req.Texto != "" {
			patch["depoimento"] = req.Texto
		}
		if v, err := req.Estrelas.Int64(); err == nil && v > 0 {
			patch["avaliacao"] = v
		}
		if req.Aprovado != nil {
			patch["aprovado"] = *req.Aprovado
		}
		if _, err := h.gateway.UpdateDepoimento(r.Context(), req.ID.String(), patch); err != nil {
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao atualizar depoimento (admin)")
			middleware.RecordSupabaseError("update_depoimento")
			if h.strict {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Depoimento atualizado com sucesso"})
}

func (h *AdminDepoimentoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
			h.log.Error().Err(err).Str("id", req.ID.String()).Msg("erro ao remover depoimento (admin)")
			middleware.RecordSupabaseError("delete_depoimento")
			if h.strict {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Depoimento removido com sucesso"})
}
