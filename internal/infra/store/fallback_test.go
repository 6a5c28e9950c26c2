package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/nutrivida/site-backend/internal/entity"
)

type fakeMirror struct {
	dados    map[string]string
	falhaEm  string
	gravadas []string
}

func (f *fakeMirror) Load(ctx context.Context, key string) (string, error) {
	if key == f.falhaEm {
		return "", errors.New("espelho fora do ar")
	}
	return f.dados[key], nil
}

func (f *fakeMirror) Save(ctx context.Context, key string, value string) error {
	if key == f.falhaEm {
		return errors.New("espelho fora do ar")
	}
	if f.dados == nil {
		f.dados = map[string]string{}
	}
	f.dados[key] = value
	f.gravadas = append(f.gravadas, key)
	return nil
}

func TestHidratacaoComSeeds(t *testing.T) {
	s := NewFallbackStore(nil, zerolog.Nop())
	ctx := context.Background()

	leads := s.Leads(ctx)
	deps := s.Depoimentos(ctx)
	cfg := s.Config(ctx)

	assert.Len(t, leads, 3)
	assert.Len(t, deps, 3)
	assert.Equal(t, "Maria Silva", leads[0].Nome)
	assert.Equal(t, "MS", deps[0].Iniciais)
	assert.Equal(t, "NutriVida", cfg.NomeSite)
	assert.Equal(t, "500+", cfg.Estatisticas.Clientes)
}

func TestHidratacaoDoEspelho(t *testing.T) {
	leads, _ := json.Marshal([]entity.Lead{{ID: "99", Nome: "Do Espelho"}})
	mirror := &fakeMirror{dados: map[string]string{"nutri-leads": string(leads)}}

	s := NewFallbackStore(mirror, zerolog.Nop())
	ctx := context.Background()

	carregados := s.Leads(ctx)
	assert.Len(t, carregados, 1)
	assert.Equal(t, "Do Espelho", carregados[0].Nome)

	// Coleções sem chave no espelho caem nos seeds
	assert.Len(t, s.Depoimentos(ctx), 3)
}

func TestEspelhoCorrompidoCaiNosSeeds(t *testing.T) {
	mirror := &fakeMirror{dados: map[string]string{"nutri-leads": "{não é json"}}
	s := NewFallbackStore(mirror, zerolog.Nop())

	assert.Len(t, s.Leads(context.Background()), 3)
}

func TestMutacoesPersistemNoEspelho(t *testing.T) {
	mirror := &fakeMirror{}
	s := NewFallbackStore(mirror, zerolog.Nop())
	ctx := context.Background()

	s.PrependLead(ctx, entity.Lead{ID: "1", Nome: "Novo"})
	assert.Contains(t, mirror.gravadas, "nutri-leads")

	var persistidos []entity.Lead
	json.Unmarshal([]byte(mirror.dados["nutri-leads"]), &persistidos)
	assert.Equal(t, "Novo", persistidos[0].Nome)
	assert.Len(t, persistidos, 4)
}

func TestFalhaDoEspelhoNaoPropaga(t *testing.T) {
	mirror := &fakeMirror{falhaEm: "nutri-leads"}
	s := NewFallbackStore(mirror, zerolog.Nop())
	ctx := context.Background()

	// Nem leitura nem escrita podem entrar em pânico ou travar
	assert.Len(t, s.Leads(ctx), 3)
	s.PrependLead(ctx, entity.Lead{ID: "1", Nome: "Novo"})
	assert.Len(t, s.Leads(ctx), 4)
}

func TestResetVoltaAosSeeds(t *testing.T) {
	s := NewFallbackStore(nil, zerolog.Nop())
	ctx := context.Background()

	s.PrependLead(ctx, entity.Lead{ID: "1", Nome: "Novo"})
	assert.Len(t, s.Leads(ctx), 4)

	s.Reset()
	assert.Len(t, s.Leads(ctx), 3)
}

func TestLeituraDevolveCopia(t *testing.T) {
	s := NewFallbackStore(nil, zerolog.Nop())
	ctx := context.Background()

	leads := s.Leads(ctx)
	leads[0].Nome = "Alterado fora"

	assert.Equal(t, "Maria Silva", s.Leads(ctx)[0].Nome)
}
