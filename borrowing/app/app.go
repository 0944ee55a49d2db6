package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/config"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/handler"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/queue"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/repository"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/server"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/service"
	"github.com/Astemirdum/library-borrowing/migrations"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/Astemirdum/library-borrowing/pkg/logger"
	"github.com/Astemirdum/library-borrowing/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "borrowing")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	producer, err := kafka.NewSyncProducer(cfg.Kafka)
	if err != nil {
		return errors.Wrap(err, "kafka.NewSyncProducer")
	}
	defer producer.Close()

	svc := service.NewService(repo, queue.NewEnqueuer(producer), log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("borrowing stopped", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
