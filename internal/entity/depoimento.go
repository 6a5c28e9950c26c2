package entity

// Depoimento é o formato público de um depoimento de cliente.
// "iniciais" e "resultado" são derivados na leitura, nunca persistidos.
type Depoimento struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Iniciais  string `json:"iniciais"`
	Texto     string `json:"texto"`
	Resultado string `json:"resultado"`
	Estrelas  int    `json:"estrelas"`
	Ativo     bool   `json:"ativo"`
}
