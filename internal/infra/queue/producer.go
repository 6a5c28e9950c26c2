package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	TipoNovoLead       = "novo_lead"
	TipoNovoDepoimento = "novo_depoimento"
)

// NotificacaoPayload avisa a nutricionista de uma nova submissão pública.
// Persistido=false indica que o registro só existe no cache local.
type NotificacaoPayload struct {
	Tipo       string `json:"tipo"`
	Nome       string `json:"nome"`
	Email      string `json:"email,omitempty"`
	Telefone   string `json:"telefone,omitempty"`
	Mensagem   string `json:"mensagem,omitempty"`
	Estrelas   int    `json:"estrelas,omitempty"`
	CriadoEm   string `json:"criado_em"`
	Persistido bool   `json:"persistido"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishNotificacao(ctx context.Context, payload NotificacaoPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
