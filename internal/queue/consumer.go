package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "log/slog"
    "os"
    "path/filepath"
    "strings"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer listens to the reservation events queue and appends one line per
// event to a log file.
type Consumer struct {
    URL     string
    Queue   string
    LogPath string
    Log     *slog.Logger
}

// NewConsumer returns a consumer writing to logs/reservations.log.
func NewConsumer(url, queue string, log *slog.Logger) *Consumer {
    if queue == "" {
        queue = DefaultQueue
    }
    return &Consumer{URL: url, Queue: queue, LogPath: filepath.Join("logs", "reservations.log"), Log: log}
}

// Run connects to RabbitMQ, declares the queue (durable), and consumes until
// ctx is cancelled.  Connection failures are retried with exponential
// backoff; a message that cannot be handled is rejected without requeue so
// the loop keeps going.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        if ctx.Err() != nil {
            return ctx.Err()
        }
        conn, err := amqp.Dial(c.URL)
        if err != nil {
            c.Log.Warn("[reservation-consumer] failed to dial broker", "err", err, "retry_in", backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consumeLoop(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.Log.Warn("[reservation-consumer] consume loop ended; reconnecting", "err", err)
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        c.Log.Warn("[reservation-consumer] set QoS failed", "err", err)
    }
    if _, err := ch.QueueDeclare(c.Queue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(c.Queue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := c.handle(d.Body); err != nil {
                c.Log.Error("[reservation-consumer] handle message failed", "err", err)
                _ = d.Nack(false, false)
                continue
            }
            _ = d.Ack(false)
        }
    }
}

func (c *Consumer) handle(body []byte) error {
    if err := os.MkdirAll(filepath.Dir(c.LogPath), 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()
    return WriteEventLine(f, body)
}

// WriteEventLine decodes a ReservationEvent and writes it to w as a single
// human-friendly line.
func WriteEventLine(w io.Writer, body []byte) error {
    var ev ReservationEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.ReservationID == "" {
        return errors.New("event without reservation_id")
    }
    if _, err := io.WriteString(w, FormatLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatLine renders ev as one log line terminated by a newline.
func FormatLine(ev ReservationEvent) string {
    rooms := fmt.Sprintf("[%s]", strings.Join(ev.Rooms, ","))
    return fmt.Sprintf("[%s] %s | reservation_id=%s | customer=%q | rooms=%s | stay=%s..%s | status=%s | plan=%s | total=%.2f\n",
        ev.OccurredAt, ev.Type, ev.ReservationID, ev.CustomerName, rooms, ev.CheckIn, ev.CheckOut, ev.Status, ev.Plan, ev.Total)
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
