package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	TableLeads       = "leads"
	TableDepoimentos = "depoimentos"
	TableSiteConfig  = "site_config"
)

// ErrNotConfigured sinaliza ausência de SUPABASE_URL/SUPABASE_ANON_KEY.
// A facade trata esse caso como modo offline, não como falha.
var ErrNotConfigured = errors.New("supabase não configurado")

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase respondeu status %d: %s", e.Status, e.Body)
}

// Client fala com a API REST do Supabase (primitivas de linha por tabela).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient loga presença/ausência das credenciais (nunca os valores)
// para diagnóstico operacional e devolve o cliente mesmo sem credenciais;
// IsConfigured decide o modo em cada operação.
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	log.Info().
		Bool("hasUrl", baseURL != "").
		Bool("hasKey", apiKey != "").
		Str("urlPrefix", Prefix(baseURL, 30)).
		Str("keyPrefix", Prefix(apiKey, 20)).
		Msg("🔗 Config Supabase")

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// Prefix trunca um valor sensível para exibição em diagnósticos.
func Prefix(s string, n int) string {
	if s == "" {
		return "não definida"
	}
	if len(s) > n {
		s = s[:n]
	}
	return s + "..."
}

func (c *Client) newRequest(ctx context.Context, method, table string, query url.Values, body any) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao marshal %s: %w", table, err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return req, nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "NutriVidaSite/1.0")
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta supabase: %w", err)
	}
	return nil
}

func (c *Client) selectRows(ctx context.Context, table string, query url.Values, out any) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	req, err := c.newRequest(ctx, http.MethodGet, table, query, nil)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) insertRow(ctx context.Context, table string, row, out any) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	req, err := c.newRequest(ctx, http.MethodPost, table, nil, row)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.send(req, out)
}

func (c *Client) updateRows(ctx context.Context, table, id string, patch map[string]any, out any) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	q := url.Values{}
	q.Set("id", "eq."+id)
	req, err := c.newRequest(ctx, http.MethodPatch, table, q, patch)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.send(req, out)
}

func (c *Client) deleteRows(ctx context.Context, table, id string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	q := url.Values{}
	q.Set("id", "eq."+id)
	req, err := c.newRequest(ctx, http.MethodDelete, table, q, nil)
	if err != nil {
		return err
	}
	return c.send(req, nil)
}

// ---- leads ----

func (c *Client) FetchLeads(ctx context.Context) ([]LeadRow, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")

	var rows []LeadRow
	if err := c.selectRows(ctx, TableLeads, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) InsertLead(ctx context.Context, row LeadRow) (*LeadRow, error) {
	var rows []LeadRow
	if err := c.insertRow(ctx, TableLeads, []LeadRow{row}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert em %s não retornou linha", TableLeads)
	}
	return &rows[0], nil
}

func (c *Client) UpdateLead(ctx context.Context, id string, patch map[string]any) (*LeadRow, error) {
	var rows []LeadRow
	if err := c.updateRows(ctx, TableLeads, id, patch, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.deleteRows(ctx, TableLeads, id)
}

// CountLeads faz a query mais barata possível, usada no teste de conexão.
func (c *Client) CountLeads(ctx context.Context) (int64, error) {
	if !c.IsConfigured() {
		return 0, ErrNotConfigured
	}
	q := url.Values{}
	q.Set("select", "id")

	req, err := c.newRequest(ctx, http.MethodGet, TableLeads, q, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")
	req.Header.Set("Range", "0-0")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("erro na conexão com supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	// Content-Range: "0-0/42" (ou "*/0" quando vazio)
	contentRange := resp.Header.Get("Content-Range")
	parts := strings.Split(contentRange, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("content-range inesperado: %q", contentRange)
	}
	total, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("content-range inesperado: %q", contentRange)
	}
	return total, nil
}

// ---- depoimentos ----

func (c *Client) FetchDepoimentos(ctx context.Context, apenasAprovados bool) ([]DepoimentoRow, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	if apenasAprovados {
		q.Set("aprovado", "eq.true")
	}

	var rows []DepoimentoRow
	if err := c.selectRows(ctx, TableDepoimentos, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) InsertDepoimento(ctx context.Context, row DepoimentoRow) (*DepoimentoRow, error) {
	var rows []DepoimentoRow
	if err := c.insertRow(ctx, TableDepoimentos, []DepoimentoRow{row}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert em %s não retornou linha", TableDepoimentos)
	}
	return &rows[0], nil
}

func (c *Client) UpdateDepoimento(ctx context.Context, id string, patch map[string]any) (*DepoimentoRow, error) {
	var rows []DepoimentoRow
	if err := c.updateRows(ctx, TableDepoimentos, id, patch, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (c *Client) DeleteDepoimento(ctx context.Context, id string) error {
	return c.deleteRows(ctx, TableDepoimentos, id)
}

// ---- site_config ----

func (c *Client) FetchSiteConfig(ctx context.Context) (*SiteConfigRow, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("limit", "1")

	var rows []SiteConfigRow
	if err := c.selectRows(ctx, TableSiteConfig, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// UpsertSiteConfig grava a linha única (id=1) da configuração.
func (c *Client) UpsertSiteConfig(ctx context.Context, row SiteConfigRow) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	req, err := c.newRequest(ctx, http.MethodPost, TableSiteConfig, nil, []SiteConfigRow{row})
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates")
	return c.send(req, nil)
}
