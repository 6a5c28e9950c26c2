package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/nutrivida/site-backend/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendNotificacao avisa a nutricionista por email sobre uma submissão nova.
func (s *EmailSender) SendNotificacao(payload queue.NotificacaoPayload) error {
	titulo := "Novo lead no site"
	if payload.Tipo == queue.TipoNovoDepoimento {
		titulo = "Novo depoimento aguardando moderação"
	}

	data := NotificacaoEmailData{
		Titulo:   titulo,
		Nome:     payload.Nome,
		Email:    payload.Email,
		Telefone: payload.Telefone,
		Mensagem: payload.Mensagem,
		Estrelas: payload.Estrelas,
		CriadoEm: payload.CriadoEm,
		Offline:  !payload.Persistido,
	}

	tmplPath := filepath.Join("templates", "notificacao.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("%s: %s", titulo, payload.Nome))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
