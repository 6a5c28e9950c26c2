package entity

// Status possíveis de um lead no funil
const (
	LeadStatusNovo       = "novo"
	LeadStatusContatado  = "contatado"
	LeadStatusAgendado   = "agendado"
	LeadStatusConvertido = "convertido"
)

// Objetivos aceitos no formulário público
const (
	ObjetivoEmagrecimento = "emagrecimento"
	ObjetivoGanhoMassa    = "ganho-massa"
	ObjetivoReeducacao    = "reeducacao"
)

// Lead é o formato público (site/painel) de uma solicitação de contato.
// No banco, objetivo+detalhes são colapsados num único campo texto "mensagem".
type Lead struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Objetivo string `json:"objetivo"`
	Detalhes string `json:"detalhes,omitempty"`
	Data     string `json:"data"` // ISO-8601
	Status   string `json:"status"`
}
