package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/entity"
	"github.com/nutrivida/site-backend/internal/infra/queue"
	"github.com/nutrivida/site-backend/internal/infra/store"
	"github.com/nutrivida/site-backend/internal/infra/supabase"
)

// Origem dos dados devolvidos (exposta no envelope das respostas)
const (
	SourceSupabase = "supabase"
	SourceFallback = "fallback"
)

// DataService é a facade de acesso a dados: nenhuma operação devolve erro
// para quem chama. Leitura tenta o banco e cai para o cache local; escrita
// pública sempre resolve para um registro, persistido ou sintetizado.
type DataService struct {
	gateway  BackendGateway
	store    *store.FallbackStore
	producer NotificationProducer // opcional; nil desliga notificações
	log      zerolog.Logger
}

func NewDataService(gateway BackendGateway, fb *store.FallbackStore, producer NotificationProducer, log zerolog.Logger) *DataService {
	return &DataService{
		gateway:  gateway,
		store:    fb,
		producer: producer,
		log:      log,
	}
}

func (s *DataService) LoadLeads(ctx context.Context) ([]entity.Lead, string) {
	if !s.gateway.IsConfigured() {
		return s.store.Leads(ctx), SourceFallback
	}

	rows, err := s.gateway.FetchLeads(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao buscar leads; usando fallback")
		return s.store.Leads(ctx), SourceFallback
	}

	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, supabase.LeadFromRow(row))
	}
	s.store.SetLeads(ctx, leads)
	return leads, SourceSupabase
}

func (s *DataService) LoadDepoimentos(ctx context.Context) ([]entity.Depoimento, string) {
	if !s.gateway.IsConfigured() {
		return s.store.Depoimentos(ctx), SourceFallback
	}

	rows, err := s.gateway.FetchDepoimentos(ctx, true)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao buscar depoimentos; usando fallback")
		return s.store.Depoimentos(ctx), SourceFallback
	}

	deps := make([]entity.Depoimento, 0, len(rows))
	for _, row := range rows {
		deps = append(deps, supabase.DepoimentoFromRow(row))
	}
	s.store.SetDepoimentos(ctx, deps)
	return deps, SourceSupabase
}

// LoadConfig parte do espelho local (que pode carregar campos que o banco
// não persiste) e sobrepõe o título vindo do banco. Duas chamadas sem
// escrita no meio devolvem objetos idênticos.
func (s *DataService) LoadConfig(ctx context.Context) (entity.ConfigSite, string) {
	base := s.store.Config(ctx)
	if !s.gateway.IsConfigured() {
		return base, SourceFallback
	}

	row, err := s.gateway.FetchSiteConfig(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao buscar config; usando fallback")
		return base, SourceFallback
	}
	return supabase.ConfigFromRow(row, base), SourceSupabase
}

type AddLeadResult struct {
	Lead      entity.Lead
	Row       supabase.LeadRow
	Persisted bool
}

// AddLead nunca falha do ponto de vista do visitante: se o insert não der
// certo (ou o banco não estiver configurado), sintetiza um registro local
// com id derivado do relógio e responde como sucesso.
func (s *DataService) AddLead(ctx context.Context, input AddLeadInput) AddLeadResult {
	row := supabase.NovoLeadRow(input.Nome, input.Email, input.Telefone, input.Objetivo, input.Detalhes)

	if s.gateway.IsConfigured() {
		inserted, err := s.gateway.InsertLead(ctx, row)
		if err == nil {
			lead := supabase.LeadFromRow(*inserted)
			s.store.PrependLead(ctx, lead)
			s.notify(ctx, queue.NotificacaoPayload{
				Tipo:       queue.TipoNovoLead,
				Nome:       inserted.Nome,
				Email:      inserted.Email,
				Telefone:   inserted.Telefone,
				Mensagem:   inserted.Mensagem,
				CriadoEm:   inserted.CreatedAt,
				Persistido: true,
			})
			return AddLeadResult{Lead: lead, Row: *inserted, Persisted: true}
		}
		s.log.Error().Err(err).Msg("erro ao inserir lead; sintetizando registro local")
	} else {
		s.log.Info().Str("email", row.Email).Msg("lead recebido em modo offline")
	}

	agora := time.Now()
	row.ID = agora.UnixMilli()
	row.Status = entity.LeadStatusNovo
	row.CreatedAt = agora.UTC().Format(time.RFC3339)

	lead := supabase.LeadFromRow(row)
	s.store.PrependLead(ctx, lead)
	s.notify(ctx, queue.NotificacaoPayload{
		Tipo:     queue.TipoNovoLead,
		Nome:     row.Nome,
		Email:    row.Email,
		Telefone: row.Telefone,
		Mensagem: row.Mensagem,
		CriadoEm: row.CreatedAt,
	})
	return AddLeadResult{Lead: lead, Row: row}
}

type AddDepoimentoResult struct {
	Depoimento entity.Depoimento
	Row        supabase.DepoimentoRow
	Persisted  bool
}

// AddDepoimento segue a mesma política do AddLead. Submissão pública entra
// sempre com aprovado=false (pendente de moderação).
func (s *DataService) AddDepoimento(ctx context.Context, input AddDepoimentoInput) AddDepoimentoResult {
	token := input.Token
	if token == "" {
		token = "token_" + uuid.NewString()
	}

	row := supabase.DepoimentoRow{
		Token:      token,
		Nome:       strings.TrimSpace(input.Nome),
		Depoimento: strings.TrimSpace(input.Depoimento),
		Avaliacao:  input.Avaliacao,
		Aprovado:   false,
	}

	if s.gateway.IsConfigured() {
		inserted, err := s.gateway.InsertDepoimento(ctx, row)
		if err == nil {
			dep := supabase.DepoimentoFromRow(*inserted)
			s.store.PrependDepoimento(ctx, dep)
			s.notify(ctx, queue.NotificacaoPayload{
				Tipo:       queue.TipoNovoDepoimento,
				Nome:       inserted.Nome,
				Mensagem:   inserted.Depoimento,
				Estrelas:   inserted.Avaliacao,
				CriadoEm:   inserted.CreatedAt,
				Persistido: true,
			})
			return AddDepoimentoResult{Depoimento: dep, Row: *inserted, Persisted: true}
		}
		s.log.Error().Err(err).Msg("erro ao inserir depoimento; sintetizando registro local")
	} else {
		s.log.Info().Str("nome", row.Nome).Msg("depoimento recebido em modo offline")
	}

	agora := time.Now()
	row.ID = agora.UnixMilli()
	row.CreatedAt = agora.UTC().Format(time.RFC3339)

	dep := supabase.DepoimentoFromRow(row)
	s.store.PrependDepoimento(ctx, dep)
	s.notify(ctx, queue.NotificacaoPayload{
		Tipo:     queue.TipoNovoDepoimento,
		Nome:     row.Nome,
		Mensagem: row.Depoimento,
		Estrelas: row.Avaliacao,
		CriadoEm: row.CreatedAt,
	})
	return AddDepoimentoResult{Depoimento: dep, Row: row}
}

// SaveConfig tenta o upsert do subconjunto persistido e, independente do
// resultado, grava o objeto completo no espelho local: na mesma sessão o
// round-trip parece completo, mesmo que uma leitura fria do banco não
// reproduza os campos sem coluna.
func (s *DataService) SaveConfig(ctx context.Context, cfg entity.ConfigSite) {
	if s.gateway.IsConfigured() {
		if err := s.gateway.UpsertSiteConfig(ctx, supabase.ConfigToRow(cfg)); err != nil {
			s.log.Error().Err(err).Msg("erro ao salvar config no banco; mantendo espelho local")
		}
	}
	s.store.SetConfig(ctx, cfg)
}

// Sync descarta o estado em memória e re-hidrata (espelho durável ou seeds).
func (s *DataService) Sync(ctx context.Context) {
	s.store.Reset()
	s.store.Ensure(ctx)
}

func (s *DataService) LastUpdate() time.Time {
	return s.store.LastUpdate()
}

func (s *DataService) notify(ctx context.Context, payload queue.NotificacaoPayload) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishNotificacao(ctx, payload); err != nil {
		s.log.Warn().Err(err).Str("tipo", payload.Tipo).Msg("falha ao publicar notificação")
	}
}
