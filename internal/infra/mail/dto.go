package mail

type NotificacaoEmailData struct {
	Titulo   string
	Nome     string
	Email    string
	Telefone string
	Mensagem string
	Estrelas int
	CriadoEm string
	Offline  bool
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}
