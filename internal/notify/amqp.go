package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	DefaultExchange = "eventos"
	DefaultQueue    = "eventos_submetidos"
)

// AMQP publishes messages to a durable queue bound to a direct exchange.
// The queue name is used as routing key.
type AMQP struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
}

// Dial connects to the broker at url and declares the exchange and queue.
func Dial(url, exchange, queue string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	a := &AMQP{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		queue:    queue,
	}

	if err := a.setup(); err != nil {
		a.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return a, nil
}

// FromEnv returns an AMQP publisher if AMQP_URL is set and Nop otherwise.
func FromEnv() (Publisher, error) {
	url, ok := os.LookupEnv("AMQP_URL")
	if !ok || url == "" {
		return Nop{}, nil
	}

	exchange := os.Getenv("AMQP_EXCHANGE")
	if exchange == "" {
		exchange = DefaultExchange
	}

	queue := os.Getenv("AMQP_QUEUE")
	if queue == "" {
		queue = DefaultQueue
	}

	a, err := Dial(url, exchange, queue)
	if err != nil {
		return nil, err
	}

	log.Info().Str("exchange", exchange).Str("queue", queue).Msg("notify")
	return a, nil
}

func (a *AMQP) setup() error {
	err := a.channel.ExchangeDeclare(
		a.exchange, // name
		"direct",   // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = a.channel.QueueDeclare(
		a.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = a.channel.QueueBind(a.queue, a.queue, a.exchange, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Publish sends msg as persistent JSON message.
func (a *AMQP) Publish(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = a.channel.PublishWithContext(
		ctx,
		a.exchange, // exchange
		a.queue,    // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().Str("exchange", a.exchange).Str("queue", a.queue).Str("unit", msg.UnitName).Msg("notify")
	return nil
}

func (a *AMQP) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
