package usecase

import (
	"context"

	"github.com/nutrivida/site-backend/internal/infra/queue"
	"github.com/nutrivida/site-backend/internal/infra/supabase"
)

// BackendGateway é o conector com o banco hospedado. IsConfigured precisa
// ser consultado antes de qualquer operação: "não configurado" é um ramo
// normal (modo offline), não um erro.
type BackendGateway interface {
	IsConfigured() bool

	FetchLeads(ctx context.Context) ([]supabase.LeadRow, error)
	InsertLead(ctx context.Context, row supabase.LeadRow) (*supabase.LeadRow, error)
	UpdateLead(ctx context.Context, id string, patch map[string]any) (*supabase.LeadRow, error)
	DeleteLead(ctx context.Context, id string) error
	CountLeads(ctx context.Context) (int64, error)

	FetchDepoimentos(ctx context.Context, apenasAprovados bool) ([]supabase.DepoimentoRow, error)
	InsertDepoimento(ctx context.Context, row supabase.DepoimentoRow) (*supabase.DepoimentoRow, error)
	UpdateDepoimento(ctx context.Context, id string, patch map[string]any) (*supabase.DepoimentoRow, error)
	DeleteDepoimento(ctx context.Context, id string) error

	FetchSiteConfig(ctx context.Context) (*supabase.SiteConfigRow, error)
	UpsertSiteConfig(ctx context.Context, row supabase.SiteConfigRow) error
}

type NotificationProducer interface {
	PublishNotificacao(ctx context.Context, payload queue.NotificacaoPayload) error
}
