package handlers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/infra/supabase"
	"github.com/nutrivida/site-backend/internal/usecase"
)

// ConnectionHandler valida a ligação com o Supabase: o GET faz uma contagem
// (barata, sem trazer linhas); o POST insere um lead de teste e remove em
// seguida. É a única família de rotas que devolve 500 quando o banco não
// está acessível — diagnóstico precisa ver a falha, não um sucesso forjado.
type ConnectionHandler struct {
	gateway usecase.BackendGateway
	log     zerolog.Logger
}

func NewConnectionHandler(gateway usecase.BackendGateway, log zerolog.Logger) *ConnectionHandler {
	return &ConnectionHandler{gateway: gateway, log: log}
}

func (h *ConnectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if os.Getenv("SUPABASE_URL") == "" {
		writeError(w, http.StatusInternalServerError, "SUPABASE_URL não definida")
		return
	}
	if os.Getenv("SUPABASE_ANON_KEY") == "" {
		writeError(w, http.StatusInternalServerError, "SUPABASE_ANON_KEY não definida")
		return
	}
	if !h.gateway.IsConfigured() {
		writeError(w, http.StatusInternalServerError, "Cliente Supabase não inicializado")
		return
	}

	total, err := h.gateway.CountLeads(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("teste de conexão falhou")
		writeError(w, http.StatusInternalServerError, "Erro ao consultar o Supabase: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Conexão com Supabase funcionando",
		Data:    map[string]any{"totalLeads": total},
	})
}

func (h *ConnectionHandler) Post(w http.ResponseWriter, r *http.Request) {
	if !h.gateway.IsConfigured() {
		writeError(w, http.StatusInternalServerError, "Supabase não configurado")
		return
	}

	row := supabase.NovoLeadRow(
		"Teste de Conexão",
		"teste@conexao.com",
		"11999999999",
		"reeducacao",
		"Lead de teste, pode remover",
	)

	inserted, err := h.gateway.InsertLead(r.Context(), row)
	if err != nil {
		h.log.Error().Err(err).Msg("insert de teste falhou")
		writeError(w, http.StatusInternalServerError, "Erro ao inserir lead de teste: "+err.Error())
		return
	}

	if err := h.gateway.DeleteLead(r.Context(), strconv.FormatInt(inserted.ID, 10)); err != nil {
		h.log.Warn().Err(err).Int64("id", inserted.ID).Msg("lead de teste não foi removido")
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Inserção e remoção de teste concluídas",
		Data:    map[string]any{"idInserido": inserted.ID},
	})
}
