package mailer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/batyskurylys/catalog-service/config"
	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// secureSubmissionPort is the well-known implicit-TLS SMTP port.
const secureSubmissionPort = 465

// notifyQueueSize bounds the number of undelivered notifications held in
// memory. Overflow falls back to a detached delivery rather than blocking.
const notifyQueueSize = 64

// sendAttemptCeiling bounds one SMTP attempt. gomail exposes no dial or IO
// deadline, so an attempt that overruns is abandoned to finish or fail in its
// own goroutine while the worker moves on.
const sendAttemptCeiling = 30 * time.Second

// Notification carries everything needed to compose the admin email for one
// stored inquiry.
type Notification struct {
	RequestID     int64
	CustomerName  string
	CustomerPhone string
	Items         []domain.ItemSnapshot
}

// Notifier accepts notifications for best-effort delivery. Notify never
// blocks and never reports failure to the caller.
type Notifier interface {
	Notify(n Notification)
}

// Dispatcher delivers admin notifications over SMTP from a bounded queue
// serviced by a single worker goroutine. Delivery is best-effort: an
// unconfigured relay is a logged no-op and every transport, upgrade or auth
// failure is swallowed after logging.
type Dispatcher struct {
	cfg      config.SmtpConfig
	queue    chan Notification
	stopChan chan struct{}
	doneChan chan struct{}

	// send performs one delivery attempt; replaced in tests.
	send func(n Notification)
	// dial runs one SMTP transport attempt; replaced in tests.
	dial func(dialer *gomail.Dialer, m *gomail.Message) error
}

func NewDispatcher(cfg config.SmtpConfig) *Dispatcher {
	d := &Dispatcher{
		cfg:      cfg,
		queue:    make(chan Notification, notifyQueueSize),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	d.send = d.sendMail
	d.dial = dialAndSend
	return d
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	go d.loop()
	zap.L().Info("notification dispatcher started",
		zap.String("relay", d.cfg.Host),
		zap.Bool("configured", d.cfg.Configured()))
}

// Stop shuts the worker down. Notifications still in the queue are dropped;
// there is no delivery guarantee to preserve.
func (d *Dispatcher) Stop() {
	close(d.stopChan)
	<-d.doneChan
	zap.L().Info("notification dispatcher stopped")
}

// Notify queues a notification for the worker. When the queue is full or the
// worker is gone the delivery runs in its own goroutine instead, with its
// errors still swallowed, so the caller never waits on the relay and never
// sees a failure.
func (d *Dispatcher) Notify(n Notification) {
	select {
	case d.queue <- n:
	default:
		go d.send(n)
	}
}

func (d *Dispatcher) loop() {
	defer close(d.doneChan)
	for {
		select {
		case n := <-d.queue:
			d.send(n)
		case <-d.stopChan:
			return
		}
	}
}

// sendMail performs one best-effort delivery. It never returns an error:
// notification is infrastructure the inquiry pipeline must not depend on.
func (d *Dispatcher) sendMail(n Notification) {
	if !d.cfg.Configured() {
		zap.L().Info("mail relay not configured, skipping notification",
			zap.Int64("request_id", n.RequestID))
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.Sender())
	m.SetHeader("To", d.cfg.AdminEmail)
	m.SetHeader("Subject", fmt.Sprintf("New request #%d from %s", n.RequestID, n.CustomerName))
	m.SetBody("text/plain", composeBody(n))

	dialer := gomail.NewDialer(d.cfg.Host, d.cfg.Port, d.cfg.Username, d.cfg.Password)
	// Implicit TLS on the secure submission port; otherwise gomail connects
	// plain and upgrades via STARTTLS when the relay offers it.
	dialer.SSL = d.cfg.Port == secureSubmissionPort

	if err := d.dial(dialer, m); err != nil {
		zap.L().Warn("failed to send admin notification",
			zap.Int64("request_id", n.RequestID),
			zap.Error(err))
		if d.cfg.Username != "" || d.cfg.Password != "" {
			// The relay may have rejected the credentials. Auth failure is
			// swallowed; the send itself is still attempted once without it.
			anon := &gomail.Dialer{Host: d.cfg.Host, Port: d.cfg.Port, SSL: dialer.SSL}
			if err := d.dial(anon, m); err != nil {
				zap.L().Warn("unauthenticated notification send failed",
					zap.Int64("request_id", n.RequestID),
					zap.Error(err))
			}
		}
	}
}

func dialAndSend(dialer *gomail.Dialer, m *gomail.Message) error {
	errChan := make(chan error, 1)
	go func() { errChan <- dialer.DialAndSend(m) }()
	select {
	case err := <-errChan:
		return err
	case <-time.After(sendAttemptCeiling):
		return errors.Errorf("smtp attempt to %s:%d exceeded %s",
			dialer.Host, dialer.Port, sendAttemptCeiling)
	}
}

// composeBody renders the plain-text summary: request id, contact, and one
// line per item snapshot.
func composeBody(n Notification) string {
	lines := []string{
		fmt.Sprintf("Request ID: %d", n.RequestID),
		fmt.Sprintf("Customer: %s", n.CustomerName),
		fmt.Sprintf("Phone: %s", n.CustomerPhone),
		"",
		"Items:",
	}
	for _, it := range n.Items {
		lines = append(lines, fmt.Sprintf("- %s (id=%d) price=%s",
			it.Name, it.ID, strconv.FormatFloat(it.Price, 'f', -1, 64)))
	}
	return strings.Join(lines, "\n")
}
