package supabase

// Formas das linhas como a API REST do Supabase devolve/espera.
// Os ids são gerados pelo banco; omitempty evita mandar id=0 no insert.

type LeadRow struct {
	ID        int64  `json:"id,omitempty"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Mensagem  string `json:"mensagem"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type DepoimentoRow struct {
	ID         int64  `json:"id,omitempty"`
	Token      string `json:"token"`
	Nome       string `json:"nome"`
	Depoimento string `json:"depoimento"`
	Avaliacao  int    `json:"avaliacao"`
	Aprovado   bool   `json:"aprovado"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type SiteConfigRow struct {
	ID                     int64   `json:"id,omitempty"`
	Titulo                 string  `json:"titulo"`
	LogoURL                *string `json:"logo_url"`
	ConsultaImagemURL      *string `json:"consulta_imagem_url"`
	NutricionistaImagemURL *string `json:"nutricionista_imagem_url"`
	UpdatedAt              string  `json:"updated_at,omitempty"`
}
