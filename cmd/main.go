package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/gophframe/internal/api/grpc/context"
	"github.com/dtroode/gophframe/internal/api/grpc/router"
	grpcServer "github.com/dtroode/gophframe/internal/api/grpc/server"
	"github.com/dtroode/gophframe/internal/config"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/metrics"
	"github.com/dtroode/gophframe/internal/model"
	"github.com/dtroode/gophframe/internal/render"
	"github.com/dtroode/gophframe/internal/repository/postgres"
	"github.com/dtroode/gophframe/internal/server"
	"github.com/dtroode/gophframe/internal/service"
	"github.com/dtroode/gophframe/internal/storage/blob"
	"github.com/dtroode/gophframe/internal/storage/local"
	storage "github.com/dtroode/gophframe/internal/storage/minio"
	"github.com/dtroode/gophframe/internal/theme"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	m := metrics.New()

	backend, err := newBlobBackend(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize blob backend", "error", err, "backend", cfg.Blob.Backend)
	}
	blobStore := blob.NewStore(backend, logger, cfg.Blob.FetchConcurrency).WithMetrics(m)

	registry := theme.NewRegistry(postgres.NewThemeRepository(db), logger)
	if err := registry.Load(ctx); err != nil {
		logger.Fatal("failed to load themes", "error", err)
	}

	fonts := render.NewFontBook(cfg.Fonts.Dirs, logger)
	frame := service.NewFrame(blobStore, fonts, render.NewRenderer(fonts), m, logger)
	editor := service.NewEditor(postgres.NewGroupRepository(db), blobStore, registry, frame, logger)

	services := router.Services{
		Frames: editor,
		Blobs:  blobStore,
		Themes: registry,
		Groups: editor,
	}
	servers := []model.Server{
		registerGRPCServer(services, grpcctx.NewManager(), m, logger, cfg),
	}
	if cfg.Metrics.Enabled {
		servers = append(servers, server.NewMetricsServer(cfg.Metrics.Addr, m.Handler()))
	}

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(serverSecurity(s, sl)); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// serverSecurity keeps the metrics endpoint on plain HTTP.
func serverSecurity(s model.Server, sl model.SecurityLayer) model.SecurityLayer {
	if _, ok := s.(*server.MetricsServer); ok {
		return server.NewPlainListener()
	}
	return sl
}

func newBlobBackend(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	if cfg.Blob.Backend == config.BlobBackendLocal {
		return local.NewStore(cfg.Blob.LocalRoot)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
}

func registerGRPCServer(
	services router.Services,
	ctxMgr model.ContextManager,
	m *metrics.Metrics,
	logger *logger.Logger,
	cfg *config.Config,
) *grpcServer.GRPCServer {
	r := router.New(services, ctxMgr, m, logger, cfg.GRPC.MaxMessageBytes)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))
}
