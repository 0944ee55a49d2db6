package sender

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/library-borrowing/email/internal/model"
	"github.com/Astemirdum/library-borrowing/email/internal/service"
	"github.com/Astemirdum/library-borrowing/pkg/breaker"
	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Config struct {
	Host     string        `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int           `envconfig:"SMTP_PORT" default:"25"`
	Username string        `envconfig:"SMTP_USERNAME"`
	Password string        `envconfig:"SMTP_PASSWORD" json:"-"`
	From     string        `envconfig:"SMTP_FROM" default:"library@example.com"`
	TLS      bool          `envconfig:"SMTP_TLS"`
	Timeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"10s"`
}

var _ service.EmailSender = (*SMTPSender)(nil)

type SMTPSender struct {
	// mu serializes sessions on client; every partition claim sends from its own goroutine.
	mu     sync.Mutex
	client *mail.Client
	from   string
	cb     *breaker.Breaker
	log    *zap.Logger
}

func NewSMTPSender(cfg Config, cb *breaker.Breaker, log *zap.Logger) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSPolicy(mail.NoTLS),
	}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "mail.NewClient")
	}
	return &SMTPSender{
		client: client,
		from:   cfg.From,
		cb:     cb,
		log:    log.Named("smtp"),
	}, nil
}

func (s *SMTPSender) SendReservationConfirmationEmail(ctx context.Context, email model.ReservationConfirmEmail) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}
	err = s.cb.Call(ctx, func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.client.DialAndSendWithContext(ctx, msg)
	})
	if err != nil {
		s.log.Warn("send failed",
			zap.Int64("reservation_id", email.ReservationID),
			zap.Stringer("breaker", s.cb.State()),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *SMTPSender) message(email model.ReservationConfirmEmail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, errors.Wrap(err, "msg.From")
	}
	if err := msg.To(email.Recipient); err != nil {
		return nil, errors.Wrap(err, "msg.To")
	}
	msg.Subject(email.Subject())
	msg.SetBodyString(mail.TypeTextPlain, email.Content())
	return msg, nil
}
