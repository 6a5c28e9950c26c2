package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notificador define o contrato de entrega (hoje email via SMTP).
type Notificador interface {
	SendNotificacao(payload NotificacaoPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier Notificador
}

func NewWorker(ch *amqp.Channel, notifier Notificador) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificacaoPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem malformada: rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao notificar: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Notificação de %s enviada (%s)", payload.Tipo, payload.Nome)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(payload NotificacaoPayload) error {
	switch payload.Tipo {
	case TipoNovoLead, TipoNovoDepoimento:
		return w.Notifier.SendNotificacao(payload)
	default:
		log.Printf("⚠️ Tipo de notificação desconhecido: %s. Apenas logando.", payload.Tipo)
		// Ack mesmo assim; não sabemos tratar e reencher a fila não ajuda.
		return nil
	}
}
