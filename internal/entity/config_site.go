package entity

type Estatisticas struct {
	Clientes    string `json:"clientes"`
	Sucesso     string `json:"sucesso"`
	Experiencia string `json:"experiencia"`
}

// ConfigSite é o conteúdo editável do site. O banco persiste apenas o
// título (nomeSite) e URLs de imagem; o restante vem dos padrões locais.
type ConfigSite struct {
	NomeSite           string       `json:"nomeSite"`
	CRN                string       `json:"crn"`
	Telefone           string       `json:"telefone"`
	Email              string       `json:"email"`
	Endereco           string       `json:"endereco"`
	HorarioAtendimento string       `json:"horarioAtendimento"`
	HeroTitulo         string       `json:"heroTitulo"`
	HeroSubtitulo      string       `json:"heroSubtitulo"`
	SobreTexto         string       `json:"sobreTexto"`
	Estatisticas       Estatisticas `json:"estatisticas"`
}
