// Package service holds adapters that carry reservation activity out of the
// process.  Publish errors are logged and returned so the booking flow is
// never interrupted by a broker outage.
package service

import (
    "context"
    "encoding/json"
    "log/slog"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/hotel-reservation/internal/booking"
    "github.com/iliyamo/hotel-reservation/internal/queue"
)

// Publisher forwards coordinator events to a durable RabbitMQ queue.  It
// satisfies booking.EventSink.
type Publisher struct {
    URL     string
    Queue   string
    Timeout time.Duration
    Log     *slog.Logger
}

// NewPublisher returns a publisher for the given broker URL and queue.
func NewPublisher(url, queueName string, log *slog.Logger) *Publisher {
    if queueName == "" {
        queueName = queue.DefaultQueue
    }
    return &Publisher{URL: url, Queue: queueName, Timeout: 3 * time.Second, Log: log}
}

// Emit publishes e and logs any failure.
func (p *Publisher) Emit(e booking.Event) {
    ctx, cancel := context.WithTimeout(context.Background(), p.Timeout)
    defer cancel()
    if err := p.Publish(ctx, queue.FromBooking(e)); err != nil {
        p.Log.Error("[publisher] reservation event not delivered",
            "type", e.Type, "reservation_id", e.Reservation.ID, "err", err)
    }
}

// Publish sends one event to the configured queue.  A connection is opened
// per message and the queue is declared durable before publishing; messages
// are marked persistent.
func (p *Publisher) Publish(ctx context.Context, ev queue.ReservationEvent) error {
    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }

    conn, err := amqp.DialConfig(p.URL, amqp.Config{Dial: amqp.DefaultDial(p.Timeout)})
    if err != nil {
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        p.Queue, // name
        true,    // durable
        false,   // autoDelete
        false,   // exclusive
        false,   // noWait
        nil,     // args
    ); err != nil {
        return err
    }

    return ch.PublishWithContext(ctx,
        "",      // default exchange
        p.Queue, // routing key = queue name
        false,   // mandatory
        false,   // immediate
        amqp.Publishing{
            ContentType:  "application/json",
            DeliveryMode: amqp.Persistent,
            Timestamp:    time.Now().UTC(),
            MessageId:    ev.ReservationID,
            Type:         ev.Type,
            Body:         body,
        },
    )
}
