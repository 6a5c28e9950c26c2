package supabase

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/nutrivida/site-backend/internal/entity"
)

// Mapeamento puro entre a forma pública (site/painel) e a forma de linha
// do banco. O banco não tem colunas para objetivo/detalhes, resultado nem
// iniciais; tudo isso é derivado aqui.

// BuildMensagem colapsa objetivo+detalhes no campo livre "mensagem".
func BuildMensagem(objetivo, detalhes string) string {
	if strings.TrimSpace(detalhes) == "" {
		detalhes = "Não informado"
	}
	return fmt.Sprintf("Objetivo: %s. Detalhes: %s", objetivo, detalhes)
}

// ObjetivoFromMensagem desfaz BuildMensagem por substring. Heurística com
// perda: uma mensagem editada direto no banco cai no padrão reeducacao, e
// "massa" nos detalhes reclassifica o lead. Comportamento mantido de
// propósito; não corrigir sem migrar a coluna.
func ObjetivoFromMensagem(mensagem string) string {
	switch {
	case strings.Contains(mensagem, entity.ObjetivoEmagrecimento):
		return entity.ObjetivoEmagrecimento
	case strings.Contains(mensagem, "massa"):
		return entity.ObjetivoGanhoMassa
	default:
		return entity.ObjetivoReeducacao
	}
}

// NovoLeadRow normaliza os campos do formulário e monta a linha de insert.
func NovoLeadRow(nome, email, telefone, objetivo, detalhes string) LeadRow {
	return LeadRow{
		Nome:     FormatNome(strings.TrimSpace(nome)),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Telefone: FormatTelefone(strings.TrimSpace(telefone)),
		Mensagem: BuildMensagem(objetivo, detalhes),
	}
}

func LeadFromRow(row LeadRow) entity.Lead {
	status := row.Status
	if status == "" {
		status = entity.LeadStatusNovo
	}
	return entity.Lead{
		ID:       strconv.FormatInt(row.ID, 10),
		Nome:     row.Nome,
		Email:    row.Email,
		Telefone: row.Telefone,
		Objetivo: ObjetivoFromMensagem(row.Mensagem),
		Detalhes: row.Mensagem,
		Data:     row.CreatedAt,
		Status:   status,
	}
}

// Iniciais deriva as iniciais do nome: primeira letra de cada palavra,
// no máximo duas, maiúsculas. Tokens vazios são ignorados.
func Iniciais(nome string) string {
	letras := make([]rune, 0, 2)
	for _, token := range strings.Fields(nome) {
		letras = append(letras, []rune(token)[0])
		if len(letras) == 2 {
			break
		}
	}
	return strings.ToUpper(string(letras))
}

func DepoimentoFromRow(row DepoimentoRow) entity.Depoimento {
	estrelas := row.Avaliacao
	if estrelas == 0 {
		estrelas = 5
	}
	return entity.Depoimento{
		ID:        strconv.FormatInt(row.ID, 10),
		Nome:      row.Nome,
		Iniciais:  Iniciais(row.Nome),
		Texto:     row.Depoimento,
		Resultado: "Cliente satisfeito", // não existe coluna; sempre sintetizado
		Estrelas:  estrelas,
		Ativo:     row.Aprovado,
	}
}

// ConfigFromRow mescla a linha do banco nos padrões locais. Só o título
// sobrevive ao round-trip; o resto do ConfigSite não tem coluna.
func ConfigFromRow(row *SiteConfigRow, padrao entity.ConfigSite) entity.ConfigSite {
	if row != nil && row.Titulo != "" {
		padrao.NomeSite = row.Titulo
	}
	return padrao
}

func ConfigToRow(cfg entity.ConfigSite) SiteConfigRow {
	return SiteConfigRow{
		ID:     1,
		Titulo: cfg.NomeSite,
	}
}

// FormatNome deixa cada palavra com inicial maiúscula.
func FormatNome(nome string) string {
	var b strings.Builder
	borda := true
	for _, r := range strings.ToLower(nome) {
		if borda && unicode.IsLetter(r) {
			r = unicode.ToUpper(r)
		}
		borda = !unicode.IsLetter(r) && !unicode.IsDigit(r)
		b.WriteRune(r)
	}
	return b.String()
}

// FormatTelefone aplica a máscara brasileira quando o número tem DDD;
// qualquer outro formato passa como veio.
func FormatTelefone(telefone string) string {
	numeros := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, telefone)

	switch len(numeros) {
	case 11: // celular com DDD
		return fmt.Sprintf("(%s) %s-%s", numeros[:2], numeros[2:7], numeros[7:])
	case 10: // fixo com DDD
		return fmt.Sprintf("(%s) %s-%s", numeros[:2], numeros[2:6], numeros[6:])
	}
	return telefone
}
