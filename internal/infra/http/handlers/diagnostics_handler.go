package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/nutrivida/site-backend/internal/infra/supabase"
)

// DiagnosticsHandler ajuda a depurar deploys: o GET mostra o que o processo
// enxerga do ambiente (nunca credenciais inteiras, só presença e prefixo);
// o POST dispara uma submissão de teste contra a própria rota de leads.
type DiagnosticsHandler struct {
	environment string
	log         zerolog.Logger
}

func NewDiagnosticsHandler(environment string, log zerolog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{environment: environment, log: log}
}

func (h *DiagnosticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	anonKey := os.Getenv("SUPABASE_ANON_KEY")

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data: map[string]any{
			"ambiente":  h.environment,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"runtime": map[string]string{
				"os":     runtime.GOOS,
				"versao": runtime.Version(),
			},
			"supabase": map[string]any{
				"urlDefinida": supabaseURL != "",
				"keyDefinida": anonKey != "",
				"urlPrefixo":  supabase.Prefix(supabaseURL, 30),
				"keyPrefixo":  supabase.Prefix(anonKey, 10),
				"configurado": supabaseURL != "" && anonKey != "",
			},
		},
	})
}

// Post chama a própria rota pública de leads, do lado de fora, como um
// cliente faria. Útil para validar o caminho completo em produção.
func (h *DiagnosticsHandler) Post(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	target := scheme + "://" + r.Host + "/api/leads"

	payload, _ := json.Marshal(map[string]string{
		"nome":     "Teste Produção",
		"email":    "teste@producao.com",
		"telefone": "11999999999",
		"objetivo": "emagrecimento",
		"detalhes": "Teste automático de diagnóstico",
	})

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(target, "application/json", bytes.NewReader(payload))
	if err != nil {
		h.log.Error().Err(err).Str("alvo", target).Msg("auto-teste falhou")
		writeError(w, http.StatusInternalServerError, "Falha ao chamar a rota de leads: "+err.Error())
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = string(body)
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Auto-teste executado",
		Data: map[string]any{
			"alvo":     target,
			"status":   resp.StatusCode,
			"resposta": parsed,
		},
	})
}
