package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"

	"github.com/dtroode/gophframe/internal/api/grpc/framepb"
	"github.com/dtroode/gophframe/internal/api/grpc/handler"
	"github.com/dtroode/gophframe/internal/api/grpc/middleware"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/metrics"
	"github.com/dtroode/gophframe/internal/model"
)

// defaultMaxMessageBytes bounds request and response size when unset.
const defaultMaxMessageBytes = 32 << 20

// Services groups the application services exposed over gRPC.
type Services struct {
	Frames handler.FrameRenderer
	Blobs  handler.BlobService
	Themes handler.ThemeCatalog
	Groups handler.GroupEditor
}

// Router represents a gRPC router for gophframe operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	services        Services
	contextManager  model.ContextManager
	metrics         *metrics.Metrics
	logger          *logger.Logger
	maxMessageBytes int
}

// New creates new gRPC Router instance.
func New(
	services Services,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
	maxMessageBytes int,
) *Router {
	if maxMessageBytes <= 0 {
		maxMessageBytes = defaultMaxMessageBytes
	}
	return &Router{
		services:        services,
		contextManager:  contextManager,
		metrics:         metrics,
		logger:          logger,
		maxMessageBytes: maxMessageBytes,
	}
}

// Register registers all gRPC services and middleware.
// Recovery runs innermost so logging and metrics see the Internal status of
// a panicking handler. The request id is set before logging.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	rec := middleware.NewRecovery(r.logger)
	requestID := middleware.NewRequestID(r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger, r.contextManager)
	counter := middleware.NewMetrics(r.metrics)

	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(r.maxMessageBytes),
		grpc.MaxSendMsgSize(r.maxMessageBytes),
		grpc.ChainUnaryInterceptor(
			requestID.HandleGRPC,
			logging.HandleGRPC,
			counter.HandleGRPC,
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(rec.HandlePanic)),
		),
	)
	r.registerFrameRoutes(s)
	r.registerBlobRoutes(s)
	r.registerThemeRoutes(s)
	r.registerGroupRoutes(s)

	return s
}

func (r *Router) registerFrameRoutes(server *grpc.Server) {
	framepb.RegisterFramesServer(server, handler.NewFrame(r.services.Frames, r.logger))
}

func (r *Router) registerBlobRoutes(server *grpc.Server) {
	framepb.RegisterBlobsServer(server, handler.NewBlob(r.services.Blobs, r.logger))
}

func (r *Router) registerThemeRoutes(server *grpc.Server) {
	framepb.RegisterThemesServer(server, handler.NewTheme(r.services.Themes, r.logger))
}

func (r *Router) registerGroupRoutes(server *grpc.Server) {
	framepb.RegisterGroupsServer(server, handler.NewGroup(r.services.Groups, r.logger))
}
