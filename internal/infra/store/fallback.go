package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/entity"
)

// Chaves do espelho durável (mesmos nomes que o front usava no localStorage)
const (
	chaveLeads       = "nutri-leads"
	chaveDepoimentos = "nutri-depoimentos"
	chaveConfig      = "nutri-config"
)

// Mirror é um armazenamento durável opcional para o cache local.
// Load devolve "" sem erro quando a chave não existe.
type Mirror interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key string, value string) error
}

// FallbackStore guarda as três coleções em memória e funciona como espelho
// local de melhor esforço: toda mutação da facade passa por aqui, tenha o
// backend aceitado a escrita ou não. Toda mutação troca a coleção inteira;
// nunca há edição parcial sob leitura concorrente.
type FallbackStore struct {
	mu     sync.RWMutex
	mirror Mirror
	log    zerolog.Logger

	initialized bool
	lastUpdate  time.Time
	leads       []entity.Lead
	depoimentos []entity.Depoimento
	config      entity.ConfigSite
}

// NewFallbackStore aceita mirror nil (modo somente memória).
func NewFallbackStore(mirror Mirror, log zerolog.Logger) *FallbackStore {
	return &FallbackStore{mirror: mirror, log: log}
}

// Ensure hidrata o cache uma única vez: primeiro do espelho durável,
// senão com os dados de demonstração. Idempotente e seguro sob concorrência.
func (s *FallbackStore) Ensure(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}

	s.leads = s.hydrateLeads(ctx)
	s.depoimentos = s.hydrateDepoimentos(ctx)
	s.config = s.hydrateConfig(ctx)
	s.lastUpdate = time.Now()
	s.initialized = true
}

func (s *FallbackStore) hydrateLeads(ctx context.Context) []entity.Lead {
	if raw := s.load(ctx, chaveLeads); raw != "" {
		var leads []entity.Lead
		if err := json.Unmarshal([]byte(raw), &leads); err == nil {
			return leads
		}
	}
	return SampleLeads()
}

func (s *FallbackStore) hydrateDepoimentos(ctx context.Context) []entity.Depoimento {
	if raw := s.load(ctx, chaveDepoimentos); raw != "" {
		var deps []entity.Depoimento
		if err := json.Unmarshal([]byte(raw), &deps); err == nil {
			return deps
		}
	}
	return SampleDepoimentos()
}

func (s *FallbackStore) hydrateConfig(ctx context.Context) entity.ConfigSite {
	if raw := s.load(ctx, chaveConfig); raw != "" {
		var cfg entity.ConfigSite
		if err := json.Unmarshal([]byte(raw), &cfg); err == nil {
			return cfg
		}
	}
	return DefaultConfig()
}

func (s *FallbackStore) load(ctx context.Context, key string) string {
	if s.mirror == nil {
		return ""
	}
	raw, err := s.mirror.Load(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("chave", key).Msg("espelho durável indisponível na leitura")
		return ""
	}
	return raw
}

// persist grava no espelho durável quando existe; falha vira warning,
// nunca erro para quem chamou.
func (s *FallbackStore) persist(ctx context.Context, key string, value any) {
	if s.mirror == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn().Err(err).Str("chave", key).Msg("erro ao serializar para o espelho")
		return
	}
	if err := s.mirror.Save(ctx, key, string(raw)); err != nil {
		s.log.Warn().Err(err).Str("chave", key).Msg("erro ao gravar no espelho durável")
	}
}

func (s *FallbackStore) Leads(ctx context.Context) []entity.Lead {
	s.Ensure(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Lead(nil), s.leads...)
}

func (s *FallbackStore) SetLeads(ctx context.Context, leads []entity.Lead) {
	s.Ensure(ctx)
	s.mu.Lock()
	s.leads = append([]entity.Lead(nil), leads...)
	s.lastUpdate = time.Now()
	s.mu.Unlock()
	s.persist(ctx, chaveLeads, leads)
}

func (s *FallbackStore) PrependLead(ctx context.Context, lead entity.Lead) {
	s.Ensure(ctx)
	s.mu.Lock()
	s.leads = append([]entity.Lead{lead}, s.leads...)
	atualizados := append([]entity.Lead(nil), s.leads...)
	s.lastUpdate = time.Now()
	s.mu.Unlock()
	s.persist(ctx, chaveLeads, atualizados)
}

func (s *FallbackStore) Depoimentos(ctx context.Context) []entity.Depoimento {
	s.Ensure(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Depoimento(nil), s.depoimentos...)
}

func (s *FallbackStore) SetDepoimentos(ctx context.Context, deps []entity.Depoimento) {
	s.Ensure(ctx)
	s.mu.Lock()
	s.depoimentos = append([]entity.Depoimento(nil), deps...)
	s.lastUpdate = time.Now()
	s.mu.Unlock()
	s.persist(ctx, chaveDepoimentos, deps)
}

func (s *FallbackStore) PrependDepoimento(ctx context.Context, dep entity.Depoimento) {
	s.Ensure(ctx)
	s.mu.Lock()
	s.depoimentos = append([]entity.Depoimento{dep}, s.depoimentos...)
	atualizados := append([]entity.Depoimento(nil), s.depoimentos...)
	s.lastUpdate = time.Now()
	s.mu.Unlock()
	s.persist(ctx, chaveDepoimentos, atualizados)
}

func (s *FallbackStore) Config(ctx context.Context) entity.ConfigSite {
	s.Ensure(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *FallbackStore) SetConfig(ctx context.Context, cfg entity.ConfigSite) {
	s.Ensure(ctx)
	s.mu.Lock()
	s.config = cfg
	s.lastUpdate = time.Now()
	s.mu.Unlock()
	s.persist(ctx, chaveConfig, cfg)
}

// Reset descarta o estado em memória (o espelho durável fica intacto);
// o próximo acesso re-hidrata.
func (s *FallbackStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = false
	s.leads = nil
	s.depoimentos = nil
	s.config = entity.ConfigSite{}
}

func (s *FallbackStore) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}
