package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"github.com/infocomm/inventory-backend/internal/config"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/models"
)

// LowStockEvent is raised when a product quantity falls below an alert threshold.
type LowStockEvent struct {
	Alert      models.Alert
	Product    models.Product
	Recipients []string
	At         time.Time
}

type Notifier interface {
	NotifyLowStock(ctx context.Context, ev LowStockEvent) error
}

// LogNotifier only records events. Used when SMTP is disabled.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) NotifyLowStock(_ context.Context, ev LowStockEvent) error {
	n.logger.Warnf("low stock: product %d (%s) at %d, alert %d threshold %d, recipients %s",
		ev.Product.ID, ev.Product.Model, ev.Product.Quantity, ev.Alert.ID, ev.Alert.Threshold, strings.Join(ev.Recipients, ","))
	return nil
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

const defaultSendTimeout = 10 * time.Second

// SMTPNotifier mails low-stock events. Delivery runs in the background so a
// slow mail server never holds up the write that triggered the alert.
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	send   SendFunc
	logger logger.Logger
	wg     sync.WaitGroup
}

func NewSMTPNotifier(cfg config.SMTPConfig, log logger.Logger) *SMTPNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &SMTPNotifier{cfg: cfg, send: sendMailTimeout(timeout), logger: log}
}

// WithSendFunc swaps the transport, mostly for tests.
func (n *SMTPNotifier) WithSendFunc(send SendFunc) *SMTPNotifier {
	n.send = send
	return n
}

// NotifyLowStock queues the email and returns. Send failures are logged.
func (n *SMTPNotifier) NotifyLowStock(ctx context.Context, ev LowStockEvent) error {
	if len(ev.Recipients) == 0 {
		n.logger.Warnf("low stock on product %d but alert %d has no recipients", ev.Product.ID, ev.Alert.ID)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", n.cfg.Server, n.cfg.Port)
	var auth smtp.Auth
	if !n.cfg.AuthDisabled {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Server)
	}
	msg := buildMessage(n.cfg.From, ev)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.send(addr, auth, n.cfg.From, ev.Recipients, msg); err != nil {
			n.logger.Errorf(err, "failed to send low stock email for alert %d", ev.Alert.ID)
			return
		}
		n.logger.Infof("low stock email for alert %d sent to %d recipient(s)", ev.Alert.ID, len(ev.Recipients))
	}()
	return nil
}

// Wait blocks until every queued email was sent or failed.
func (n *SMTPNotifier) Wait() {
	n.wg.Wait()
}

// sendMailTimeout behaves like smtp.SendMail with the dial and the whole
// exchange bounded by timeout.
func sendMailTimeout(timeout time.Duration) SendFunc {
	return func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		conn, err := net.DialTimeout("tcp", addr, timeout)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return err
		}

		host, _, _ := net.SplitHostPort(addr)
		c, err := smtp.NewClient(conn, host)
		if err != nil {
			return err
		}
		defer c.Close()

		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
				return err
			}
		}
		if a != nil {
			if ok, _ := c.Extension("AUTH"); ok {
				if err := c.Auth(a); err != nil {
					return err
				}
			}
		}

		if err := c.Mail(from); err != nil {
			return err
		}
		for _, rcpt := range to {
			if err := c.Rcpt(rcpt); err != nil {
				return err
			}
		}
		w, err := c.Data()
		if err != nil {
			return err
		}
		if _, err := w.Write(msg); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		return c.Quit()
	}
}

// headerSafe drops CR and LF so a value cannot open a new header line.
func headerSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

func buildMessage(from string, ev LowStockEvent) []byte {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	model := headerSafe(ev.Product.Model)
	subject := mime.QEncoding.Encode("utf-8", "LOW STOCK: "+model)
	body := fmt.Sprintf("%s\nProduct: %s (#%d)\nQuantity: %d\nThreshold: %d\nTime: %s",
		ev.Alert.Message, model, ev.Product.ID, ev.Product.Quantity, ev.Alert.Threshold, at.Format(time.RFC3339))

	return []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		from, strings.Join(ev.Recipients, ", "), subject, body))
}
