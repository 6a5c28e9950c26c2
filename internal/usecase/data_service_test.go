package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nutrivida/site-backend/internal/entity"
	"github.com/nutrivida/site-backend/internal/infra/queue"
	"github.com/nutrivida/site-backend/internal/infra/store"
	"github.com/nutrivida/site-backend/internal/infra/supabase"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockGateway) FetchLeads(ctx context.Context) ([]supabase.LeadRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]supabase.LeadRow), args.Error(1)
}

func (m *MockGateway) InsertLead(ctx context.Context, row supabase.LeadRow) (*supabase.LeadRow, error) {
	args := m.Called(ctx, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.LeadRow), args.Error(1)
}

func (m *MockGateway) UpdateLead(ctx context.Context, id string, patch map[string]any) (*supabase.LeadRow, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.LeadRow), args.Error(1)
}

func (m *MockGateway) DeleteLead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) CountLeads(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGateway) FetchDepoimentos(ctx context.Context, apenasAprovados bool) ([]supabase.DepoimentoRow, error) {
	args := m.Called(ctx, apenasAprovados)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]supabase.DepoimentoRow), args.Error(1)
}

func (m *MockGateway) InsertDepoimento(ctx context.Context, row supabase.DepoimentoRow) (*supabase.DepoimentoRow, error) {
	args := m.Called(ctx, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.DepoimentoRow), args.Error(1)
}

func (m *MockGateway) UpdateDepoimento(ctx context.Context, id string, patch map[string]any) (*supabase.DepoimentoRow, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.DepoimentoRow), args.Error(1)
}

func (m *MockGateway) DeleteDepoimento(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) FetchSiteConfig(ctx context.Context) (*supabase.SiteConfigRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.SiteConfigRow), args.Error(1)
}

func (m *MockGateway) UpsertSiteConfig(ctx context.Context, row supabase.SiteConfigRow) error {
	return m.Called(ctx, row).Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishNotificacao(ctx context.Context, payload queue.NotificacaoPayload) error {
	return m.Called(ctx, payload).Error(0)
}

func newService(gateway *MockGateway, producer NotificationProducer) (*DataService, *store.FallbackStore) {
	fb := store.NewFallbackStore(nil, zerolog.Nop())
	return NewDataService(gateway, fb, producer, zerolog.Nop()), fb
}

func TestAddLeadOffline(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(false)
	service, fb := newService(gateway, nil)

	result := service.AddLead(context.Background(), AddLeadInput{
		Nome:     "maria silva",
		Email:    "MARIA@X.COM",
		Telefone: "11999999999",
		Objetivo: "emagrecimento",
	})

	assert.False(t, result.Persisted)
	assert.Equal(t, entity.LeadStatusNovo, result.Row.Status)
	assert.Contains(t, result.Row.Mensagem, "Objetivo: emagrecimento")
	assert.Equal(t, "Maria Silva", result.Row.Nome)
	assert.Equal(t, "maria@x.com", result.Row.Email)
	assert.NotZero(t, result.Row.ID)
	assert.NotEmpty(t, result.Row.CreatedAt)

	// Registro sintetizado entra na frente do cache local
	leads := fb.Leads(context.Background())
	assert.Equal(t, "Maria Silva", leads[0].Nome)
	assert.Len(t, leads, 4) // 3 de demonstração + o novo
}

func TestAddLeadInsertFalhaSintetiza(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(true)
	gateway.On("InsertLead", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	service, _ := newService(gateway, nil)

	result := service.AddLead(context.Background(), AddLeadInput{
		Nome:     "Maria",
		Email:    "maria@x.com",
		Telefone: "11999999999",
		Objetivo: "ganho-massa",
	})

	assert.False(t, result.Persisted)
	assert.Equal(t, entity.LeadStatusNovo, result.Row.Status)
	assert.Equal(t, entity.ObjetivoGanhoMassa, result.Lead.Objetivo)
	gateway.AssertExpectations(t)
}

func TestAddLeadPersistidoNotifica(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(true)
	gateway.On("InsertLead", mock.Anything, mock.Anything).Return(&supabase.LeadRow{
		ID:        42,
		Nome:      "Maria",
		Email:     "maria@x.com",
		Mensagem:  "Objetivo: emagrecimento. Detalhes: Não informado",
		Status:    "novo",
		CreatedAt: "2025-01-15T10:00:00Z",
	}, nil)

	producer := new(MockProducer)
	producer.On("PublishNotificacao", mock.Anything, mock.MatchedBy(func(p queue.NotificacaoPayload) bool {
		return p.Tipo == queue.TipoNovoLead && p.Persistido
	})).Return(nil)

	service, _ := newService(gateway, producer)

	result := service.AddLead(context.Background(), AddLeadInput{
		Nome:     "Maria",
		Email:    "maria@x.com",
		Telefone: "11999999999",
		Objetivo: "emagrecimento",
	})

	assert.True(t, result.Persisted)
	assert.Equal(t, "42", result.Lead.ID)
	producer.AssertExpectations(t)
}

func TestAddDepoimentoOffline(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(false)
	service, _ := newService(gateway, nil)

	result := service.AddDepoimento(context.Background(), AddDepoimentoInput{
		Nome:       "maria silva",
		Depoimento: "Excelente!",
		Avaliacao:  5,
	})

	assert.False(t, result.Persisted)
	assert.False(t, result.Row.Aprovado, "submissão pública entra pendente de moderação")
	assert.Contains(t, result.Row.Token, "token_")
	assert.Equal(t, "MS", result.Depoimento.Iniciais)
}

func TestLoadLeadsFallbackEmErro(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(true)
	gateway.On("FetchLeads", mock.Anything).Return(nil, errors.New("conexão recusada"))
	service, _ := newService(gateway, nil)

	leads, source := service.LoadLeads(context.Background())

	assert.Equal(t, SourceFallback, source)
	assert.Len(t, leads, 3, "seeds de demonstração")
}

func TestLoadLeadsSupabase(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(true)
	gateway.On("FetchLeads", mock.Anything).Return([]supabase.LeadRow{
		{ID: 1, Nome: "Maria", Mensagem: "Objetivo: emagrecimento. Detalhes: x"},
	}, nil)
	service, fb := newService(gateway, nil)

	leads, source := service.LoadLeads(context.Background())

	assert.Equal(t, SourceSupabase, source)
	assert.Len(t, leads, 1)
	assert.Equal(t, entity.ObjetivoEmagrecimento, leads[0].Objetivo)

	// Cache local espelha o resultado
	assert.Len(t, fb.Leads(context.Background()), 1)
}

func TestLoadConfigIdempotente(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(false)
	service, _ := newService(gateway, nil)

	primeira, s1 := service.LoadConfig(context.Background())
	segunda, s2 := service.LoadConfig(context.Background())

	assert.Equal(t, primeira, segunda)
	assert.Equal(t, SourceFallback, s1)
	assert.Equal(t, s1, s2)
	assert.Equal(t, "NutriVida", primeira.NomeSite)
}

func TestSaveConfigEspelhaObjetoCompleto(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(true)
	gateway.On("UpsertSiteConfig", mock.Anything, mock.Anything).Return(errors.New("indisponível"))
	service, fb := newService(gateway, nil)

	cfg := store.DefaultConfig()
	cfg.NomeSite = "Clínica Vida"
	cfg.CRN = "99999-RJ"
	service.SaveConfig(context.Background(), cfg)

	// Mesmo com o banco fora, o espelho local guarda tudo
	salvo := fb.Config(context.Background())
	assert.Equal(t, "Clínica Vida", salvo.NomeSite)
	assert.Equal(t, "99999-RJ", salvo.CRN)
}

func TestSyncDescartaEstadoLocal(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("IsConfigured").Return(false)
	service, fb := newService(gateway, nil)

	service.AddLead(context.Background(), AddLeadInput{
		Nome: "Maria", Email: "maria@x.com", Telefone: "11999999999", Objetivo: "emagrecimento",
	})
	assert.Len(t, fb.Leads(context.Background()), 4)

	service.Sync(context.Background())

	// Sem espelho durável, volta aos seeds
	assert.Len(t, fb.Leads(context.Background()), 3)
}
