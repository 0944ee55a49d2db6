package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astemirdum/library-borrowing/email/config"
	"github.com/Astemirdum/library-borrowing/email/internal/handler"
	"github.com/Astemirdum/library-borrowing/email/internal/repository"
	"github.com/Astemirdum/library-borrowing/email/internal/sender"
	"github.com/Astemirdum/library-borrowing/email/internal/service"
	"github.com/Astemirdum/library-borrowing/pkg/breaker"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/Astemirdum/library-borrowing/pkg/logger"
	"github.com/Astemirdum/library-borrowing/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run consumes reservation events until SIGINT/SIGTERM. The schema is owned
// by the borrowing service, so no migrations are applied here.
func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "email")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, nil)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	smtp, err := sender.NewSMTPSender(cfg.SMTP, breaker.New(cfg.Breaker), log)
	if err != nil {
		return errors.Wrap(err, "smtp")
	}
	facade := service.NewFacade(smtp, repo, log)

	group, err := kafka.NewConsumer(cfg.Kafka, kafka.EmailConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("consuming", zap.String("topic", kafka.BookReservedTopic))
		return kafka.Consume(gCtx, group, handler.NewConsumer(facade.Handle, log), kafka.BookReservedTopic)
	})
	g.Go(func() error {
		for err := range group.Errors() {
			log.Error("consumer group", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")
		return group.Close()
	})

	if err := g.Wait(); err != nil {
		log.Error("email stopped", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
