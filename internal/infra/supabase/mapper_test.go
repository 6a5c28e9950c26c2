package supabase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutrivida/site-backend/internal/entity"
)

func TestBuildMensagem(t *testing.T) {
	assert.Equal(t,
		"Objetivo: emagrecimento. Detalhes: quero perder 10kg",
		BuildMensagem("emagrecimento", "quero perder 10kg"),
	)
	assert.Equal(t,
		"Objetivo: reeducacao. Detalhes: Não informado",
		BuildMensagem("reeducacao", ""),
	)
	assert.Equal(t,
		"Objetivo: ganho-massa. Detalhes: Não informado",
		BuildMensagem("ganho-massa", "   "),
	)
}

func TestObjetivoRoundTrip(t *testing.T) {
	casos := []string{
		entity.ObjetivoEmagrecimento,
		entity.ObjetivoGanhoMassa,
		entity.ObjetivoReeducacao,
	}

	for _, objetivo := range casos {
		mensagem := BuildMensagem(objetivo, "x")
		assert.Equal(t, objetivo, ObjetivoFromMensagem(mensagem), "objetivo %q", objetivo)
	}
}

func TestObjetivoFromMensagemDesconhecida(t *testing.T) {
	// Mensagem que não saiu do mapper cai no padrão
	assert.Equal(t, entity.ObjetivoReeducacao, ObjetivoFromMensagem("texto qualquer"))
	assert.Equal(t, entity.ObjetivoReeducacao, ObjetivoFromMensagem(""))

	// "massa" em qualquer lugar reclassifica (comportamento herdado)
	assert.Equal(t, entity.ObjetivoGanhoMassa, ObjetivoFromMensagem("gosto de massa italiana"))
}

func TestIniciais(t *testing.T) {
	assert.Equal(t, "MS", Iniciais("maria silva"))
	assert.Equal(t, "A", Iniciais("Ana"))
	assert.Equal(t, "", Iniciais(""))
	assert.Equal(t, "JS", Iniciais("  joão   dos santos  "))
	assert.Equal(t, "MS", Iniciais("Maria Souza Oliveira"))
}

func TestNovoLeadRowNormaliza(t *testing.T) {
	row := NovoLeadRow("  maria silva  ", "  MARIA@X.COM ", "11999999999", "emagrecimento", "")

	assert.Equal(t, "Maria Silva", row.Nome)
	assert.Equal(t, "maria@x.com", row.Email)
	assert.Equal(t, "(11) 99999-9999", row.Telefone)
	assert.Equal(t, "Objetivo: emagrecimento. Detalhes: Não informado", row.Mensagem)
	assert.Zero(t, row.ID)
}

func TestLeadFromRowPadroes(t *testing.T) {
	lead := LeadFromRow(LeadRow{
		ID:        42,
		Nome:      "Maria Silva",
		Mensagem:  "Objetivo: emagrecimento. Detalhes: x",
		CreatedAt: "2025-01-15T10:00:00Z",
	})

	assert.Equal(t, "42", lead.ID)
	assert.Equal(t, entity.LeadStatusNovo, lead.Status)
	assert.Equal(t, entity.ObjetivoEmagrecimento, lead.Objetivo)
	assert.Equal(t, "Objetivo: emagrecimento. Detalhes: x", lead.Detalhes)
	assert.Equal(t, "2025-01-15T10:00:00Z", lead.Data)
}

func TestDepoimentoFromRowPadroes(t *testing.T) {
	dep := DepoimentoFromRow(DepoimentoRow{
		ID:         7,
		Nome:       "maria silva",
		Depoimento: "Excelente acompanhamento",
		Avaliacao:  0,
		Aprovado:   true,
	})

	assert.Equal(t, "7", dep.ID)
	assert.Equal(t, "MS", dep.Iniciais)
	assert.Equal(t, 5, dep.Estrelas, "avaliação ausente vira 5 estrelas")
	assert.Equal(t, "Cliente satisfeito", dep.Resultado)
	assert.True(t, dep.Ativo)
}

func TestConfigRoundTrip(t *testing.T) {
	padrao := entity.ConfigSite{NomeSite: "NutriVida", CRN: "12345-SP"}

	// Sem linha no banco, devolve o padrão intacto
	assert.Equal(t, padrao, ConfigFromRow(nil, padrao))

	// Só o título sobrevive ao round-trip
	cfg := ConfigFromRow(&SiteConfigRow{Titulo: "Clínica Vida"}, padrao)
	assert.Equal(t, "Clínica Vida", cfg.NomeSite)
	assert.Equal(t, "12345-SP", cfg.CRN)

	row := ConfigToRow(cfg)
	assert.Equal(t, int64(1), row.ID)
	assert.Equal(t, "Clínica Vida", row.Titulo)
}

func TestFormatNome(t *testing.T) {
	assert.Equal(t, "Maria Silva", FormatNome("MARIA SILVA"))
	assert.Equal(t, "João Dos Santos", FormatNome("joão dos santos"))
	assert.Equal(t, "Ana-Clara", FormatNome("ana-clara"))
	assert.Equal(t, "", FormatNome(""))
}

func TestFormatTelefone(t *testing.T) {
	assert.Equal(t, "(11) 99999-9999", FormatTelefone("11999999999"))
	assert.Equal(t, "(11) 3333-4444", FormatTelefone("1133334444"))
	assert.Equal(t, "(11) 99999-9999", FormatTelefone("(11) 9 9999-9999"))
	// Sem DDD reconhecível, passa como veio
	assert.Equal(t, "999-9999", FormatTelefone("999-9999"))
}
