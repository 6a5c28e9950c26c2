package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestIsConfigured(t *testing.T) {
	log := zerolog.Nop()

	assert.False(t, NewClient("", "", log).IsConfigured())
	assert.False(t, NewClient("https://x.supabase.co", "", log).IsConfigured())
	assert.False(t, NewClient("", "chave", log).IsConfigured())
	assert.True(t, NewClient("https://x.supabase.co", "chave", log).IsConfigured())

	var nulo *Client
	assert.False(t, nulo.IsConfigured())
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "não definida", Prefix("", 10))
	assert.Equal(t, "abc...", Prefix("abc", 10))
	assert.Equal(t, "abcde...", Prefix("abcdefghij", 5))
}

func TestOperacoesSemConfiguracao(t *testing.T) {
	c := NewClient("", "", zerolog.Nop())
	ctx := context.Background()

	_, err := c.FetchLeads(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.InsertLead(ctx, LeadRow{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.CountLeads(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, c.DeleteLead(ctx, "1"), ErrNotConfigured)
	assert.ErrorIs(t, c.UpsertSiteConfig(ctx, SiteConfigRow{}), ErrNotConfigured)
}

func TestInsertLead(t *testing.T) {
	var recebido *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Clone(r.Context())

		var rows []LeadRow
		json.NewDecoder(r.Body).Decode(&rows)
		rows[0].ID = 42
		rows[0].Status = "novo"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "chave-teste", zerolog.Nop())
	inserted, err := c.InsertLead(context.Background(), LeadRow{
		Nome:     "Maria Silva",
		Email:    "maria@x.com",
		Telefone: "(11) 99999-9999",
		Mensagem: "Objetivo: emagrecimento. Detalhes: Não informado",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), inserted.ID)
	assert.Equal(t, "novo", inserted.Status)

	assert.Equal(t, "/rest/v1/leads", recebido.URL.Path)
	assert.Equal(t, "chave-teste", recebido.Header.Get("apikey"))
	assert.Equal(t, "Bearer chave-teste", recebido.Header.Get("Authorization"))
	assert.Equal(t, "return=representation", recebido.Header.Get("Prefer"))
}

func TestFetchDepoimentosFiltraAprovados(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "chave", zerolog.Nop())

	_, err := c.FetchDepoimentos(context.Background(), true)
	assert.NoError(t, err)
	assert.Contains(t, query, "aprovado=eq.true")

	_, err = c.FetchDepoimentos(context.Background(), false)
	assert.NoError(t, err)
	assert.NotContains(t, query, "aprovado")
}

func TestCountLeads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
		w.Header().Set("Content-Range", "0-0/37")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "chave", zerolog.Nop())
	total, err := c.CountLeads(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(37), total)
}

func TestErroDoServidorViraAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "chave-errada", zerolog.Nop())
	_, err := c.FetchLeads(context.Background())

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Invalid API key")
}

func TestFetchSiteConfigVazio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "chave", zerolog.Nop())
	row, err := c.FetchSiteConfig(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, row)
}
