package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publisher is the subset of *amqp091.Channel the notifier uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Notifier publishes report lifecycle events to a topic exchange.
type Notifier struct {
	conn     *amqp091.Connection
	channel  publisher
	closer   func() error
	exchange string
	mu       sync.Mutex // amqp091 channels are not safe for concurrent publishing
}

var _ portssvc.ReportNotifier = (*Notifier)(nil)

// NewNotifier dials the broker and declares the exchange. Events are routed by
// their name, so subscribers bind to report.completed, report.failed or report.*.
func NewNotifier(url, exchange string) (*Notifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	n := newNotifier(channel, exchange)
	n.conn = conn
	n.closer = channel.Close
	return n, nil
}

func newNotifier(ch publisher, exchange string) *Notifier {
	return &Notifier{channel: ch, exchange: exchange}
}

// NotifyReportFinished publishes a persistent JSON event for the report.
func (n *Notifier) NotifyReportFinished(ctx context.Context, report domain.Report) error {
	msg := NewReportFinishedMessage(report)
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	n.mu.Lock()
	err = n.channel.PublishWithContext(
		ctx,
		n.exchange, // exchange
		msg.Event,  // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.Timestamp,
			MessageId:    report.ReportID,
			Type:         msg.Event,
			Body:         body,
		},
	)
	n.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published report event",
		"report_id", report.ReportID,
		"event", msg.Event,
		"exchange", n.exchange)
	return nil
}

// Close closes the channel and then the connection, reporting both failures.
func (n *Notifier) Close() error {
	var errs []error
	if n.closer != nil {
		if err := n.closer(); err != nil {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if n.conn != nil {
		if err := n.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NoopNotifier discards events. It is used when no broker is configured.
type NoopNotifier struct{}

var _ portssvc.ReportNotifier = NoopNotifier{}

func (NoopNotifier) NotifyReportFinished(context.Context, domain.Report) error { return nil }
