package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/entity"
	"github.com/nutrivida/site-backend/internal/infra/http/middleware"
	"github.com/nutrivida/site-backend/internal/infra/store"
	"github.com/nutrivida/site-backend/internal/infra/supabase"
	"github.com/nutrivida/site-backend/internal/usecase"
)

// SiteData é o agregado que o front carrega numa chamada só.
type SiteData struct {
	Leads       []entity.Lead       `json:"leads"`
	Depoimentos []entity.Depoimento `json:"depoimentos"`
	Config      entity.ConfigSite   `json:"config"`
}

type DataHandler struct {
	service *usecase.DataService
	gateway usecase.BackendGateway
	store   *store.FallbackStore
	log     zerolog.Logger
}

func NewDataHandler(service *usecase.DataService, gateway usecase.BackendGateway, fb *store.FallbackStore, log zerolog.Logger) *DataHandler {
	return &DataHandler{service: service, gateway: gateway, store: fb, log: log}
}

// Get monta o agregado com as três consultas em paralelo. Falha parcial é
// tolerada: cada consulta resolve sozinha para o fallback.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.gateway.IsConfigured() {
		middleware.RecordFallback("data")
		writeJSON(w, http.StatusOK, Envelope{
			Success: true,
			Source:  usecase.SourceFallback,
			Data: SiteData{
				Leads:       []entity.Lead{},
				Depoimentos: store.SampleDepoimentos(),
				Config:      store.DefaultConfig(),
			},
		})
		return
	}

	data, source := h.buildAggregate(r)
	if source == usecase.SourceFallback {
		middleware.RecordFallback("data")
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Source:  source,
		Data:    data,
	})
}

func (h *DataHandler) buildAggregate(r *http.Request) (SiteData, string) {
	var (
		wg   sync.WaitGroup
		data SiteData

		leadsSource, depsSource, configSource string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Leads, leadsSource = h.service.LoadLeads(r.Context())
	}()
	go func() {
		defer wg.Done()
		data.Depoimentos, depsSource = h.service.LoadDepoimentos(r.Context())
	}()
	go func() {
		defer wg.Done()
		data.Config, configSource = h.service.LoadConfig(r.Context())
	}()
	wg.Wait()

	if len(data.Depoimentos) == 0 {
		data.Depoimentos = store.SampleDepoimentos()
		depsSource = usecase.SourceFallback
	}
	if data.Leads == nil {
		data.Leads = []entity.Lead{}
	}

	source := usecase.SourceSupabase
	for _, s := range []string{leadsSource, depsSource, configSource} {
		if s == usecase.SourceFallback {
			source = usecase.SourceFallback
			break
		}
	}
	return data, source
}

// Operações aceitas pelo POST /data
const (
	opAddLead            = "ADD_LEAD"
	opUpdateLeads        = "UPDATE_LEADS"
	opUpdateDepoimentos  = "UPDATE_DEPOIMENTOS"
	opUpdateConfiguracao = "UPDATE_CONFIG"
)

type dataMutationRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Post é o despachante único de mutação do painel: uma operação por chamada,
// identificada pelo campo type. Depois de aplicar, re-sincroniza o cache e
// devolve o agregado atualizado.
func (h *DataHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dataMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	switch req.Type {
	case opAddLead:
		var input usecase.AddLeadInput
		if err := json.Unmarshal(req.Data, &input); err != nil {
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
		h.service.AddLead(r.Context(), input)

	case opUpdateLeads:
		// O painel reenvia a coleção inteira, mas leads só nascem pelo
		// formulário público; não há nada a persistir aqui.

	case opUpdateDepoimentos:
		var deps []entity.Depoimento
		if err := json.Unmarshal(req.Data, &deps); err != nil {
			writeError(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		if err := h.persistDepoimentos(r, deps); err != nil {
			h.log.Error().Err(err).Msg("erro ao salvar depoimentos")
			middleware.RecordSupabaseError("insert_depoimento")
			writeError(w, http.StatusInternalServerError, "Erro ao salvar dados")
			return
		}

	case opUpdateConfiguracao:
		var cfg entity.ConfigSite
		if err := json.Unmarshal(req.Data, &cfg); err != nil {
			writeError(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		h.service.SaveConfig(r.Context(), cfg)

	default:
		writeError(w, http.StatusBadRequest, "Tipo de operação inválido")
		return
	}

	if h.gateway.IsConfigured() {
		h.service.Sync(r.Context())
		data, source := h.buildAggregate(r)
		writeJSON(w, http.StatusOK, Envelope{
			Success: true,
			Message: "Dados salvos com sucesso",
			Source:  source,
			Data:    data,
		})
		return
	}

	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Dados salvos com sucesso"})
}

// persistDepoimentos insere as entradas novas (id com prefixo temp_, criadas
// no painel antes de salvar) e espelha a coleção aprovada no cache local.
func (h *DataHandler) persistDepoimentos(r *http.Request, deps []entity.Depoimento) error {
	if h.gateway.IsConfigured() {
		for _, dep := range deps {
			if !strings.HasPrefix(dep.ID, "temp_") {
				continue
			}
			row := supabase.DepoimentoRow{
				Token:      "token_" + uuid.NewString(),
				Nome:       dep.Nome,
				Depoimento: dep.Texto,
				Avaliacao:  dep.Estrelas,
				Aprovado:   dep.Ativo,
			}
			if _, err := h.gateway.InsertDepoimento(r.Context(), row); err != nil {
				return err
			}
		}
	}
	h.store.SetDepoimentos(r.Context(), deps)
	return nil
}
