package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fitlinea/fitlinea/internal/anomaly"
	"github.com/fitlinea/fitlinea/internal/auth"
	"github.com/fitlinea/fitlinea/internal/chat"
	"github.com/fitlinea/fitlinea/internal/config"
	"github.com/fitlinea/fitlinea/internal/db"
	"github.com/fitlinea/fitlinea/internal/middleware"
	"github.com/fitlinea/fitlinea/internal/misc"
	"github.com/fitlinea/fitlinea/internal/notifications"
	"github.com/fitlinea/fitlinea/internal/plans"
	"github.com/fitlinea/fitlinea/internal/presence"
	"github.com/fitlinea/fitlinea/internal/telemetry/metrics"
	"github.com/fitlinea/fitlinea/internal/traininglog"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	chatClient      *chat.Client
	presenceManager *presence.Manager
	anomalyDetector *anomaly.Detector

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config            *config.Config
	VersionInfo       string
	AdminUsername     string
	AdminPasswordHash string
	RedisPassword     string
	ChatServiceToken  string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.Config.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	chatClient := chat.NewClient(
		params.Config.ChatServiceBaseURL,
		params.ChatServiceToken,
		tracedHttpClient,
	)

	presenceManager := presence.NewManager(presence.ManagerParams{
		Lister:          chatClient,
		Metrics:         metricsManager,
		WarmupDelay:     time.Duration(params.Config.Presence.WarmupDelaySeconds) * time.Second,
		PollInterval:    time.Duration(params.Config.Presence.PollIntervalSeconds) * time.Second,
		FreshnessWindow: time.Duration(params.Config.Presence.FreshnessWindowSeconds) * time.Second,
	})

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		versionInfo:     params.VersionInfo,
		chatClient:      chatClient,
		presenceManager: presenceManager,
		anomalyDetector: anomaly.NewDetector(anomalyThresholds(params.Config.Anomaly)),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}, nil
}

// anomalyThresholds overlays the configured ratios over the defaults,
// zero config values keep the default.
func anomalyThresholds(cfg config.AnomalyConfig) anomaly.Thresholds {
	thresholds := anomaly.DefaultThresholds()
	if cfg.RepsImprovementFactor > 0 {
		thresholds.RepsImprovementFactor = cfg.RepsImprovementFactor
	}
	if cfg.RepsDropFactor > 0 {
		thresholds.RepsDropFactor = cfg.RepsDropFactor
	}
	if cfg.RepsUnusualFactor > 0 {
		thresholds.RepsUnusualFactor = cfg.RepsUnusualFactor
	}
	if cfg.WeightIncreaseFactor > 0 {
		thresholds.WeightIncreaseFactor = cfg.WeightIncreaseFactor
	}
	if cfg.WeightDropFactor > 0 {
		thresholds.WeightDropFactor = cfg.WeightDropFactor
	}
	if cfg.WeightLowTolerance > 0 {
		thresholds.WeightLowTolerance = cfg.WeightLowTolerance
	}
	if cfg.WeightHighTolerance > 0 {
		thresholds.WeightHighTolerance = cfg.WeightHighTolerance
	}
	if cfg.RepsRetentionTolerance > 0 {
		thresholds.RepsRetentionTolerance = cfg.RepsRetentionTolerance
	}
	if cfg.StagnationSessionWindow > 0 {
		thresholds.StagnationSessionWindow = cfg.StagnationSessionWindow
	}
	if cfg.HistorySessionLimit > 0 {
		thresholds.HistorySessionLimit = cfg.HistorySessionLimit
	}
	return thresholds
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitlinea-router"))

	notificationsRepo := notifications.NewRepo(s.dbPool)
	anomalyDispatcher := notifications.NewDispatcher(
		notificationsRepo,
		s.chatClient,
		s.metricsManager,
	)

	trainingLogService := traininglog.NewService(
		traininglog.NewRepo(s.dbPool),
		s.anomalyDetector,
		anomalyDispatcher,
		s.metricsManager,
	)
	trainingLogHandler := traininglog.NewHandler(trainingLogService)
	r.HandleFunc("/traininglog", trainingLogHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-log-entry")
	r.HandleFunc("/traininglog/set", trainingLogHandler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/traininglog/list/page/{page}/size/{size}", trainingLogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-log-entries")
	r.HandleFunc("/traininglog/{id}", trainingLogHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-log-entry")
	r.HandleFunc("/traininglog/{id}", trainingLogHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-log-entry")

	notificationsHandler := notifications.NewHandler(notificationsRepo)
	r.HandleFunc("/notifications/list/page/{page}/size/{size}", notificationsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-notifications")
	r.HandleFunc("/notifications/unread/count", notificationsHandler.HandleUnreadCount).Methods("GET", "OPTIONS").Name("unread-count")
	r.HandleFunc("/notifications/read", notificationsHandler.HandleMarkAllRead).Methods("PUT", "OPTIONS").Name("mark-all-read")
	r.HandleFunc("/notifications/{id}/read", notificationsHandler.HandleMarkRead).Methods("PUT", "OPTIONS").Name("mark-read")
	r.HandleFunc("/notifications/{id}", notificationsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-notification")

	presenceHandler := presence.NewHandler(s.presenceManager)
	r.HandleFunc("/presence/alerts", presenceHandler.HandleGetAlerts).Methods("GET", "OPTIONS").Name("presence-alerts")
	r.HandleFunc("/presence/alerts/{conversationId}", presenceHandler.HandleDismissAlert).Methods("DELETE", "OPTIONS").Name("dismiss-alert")
	r.HandleFunc("/presence/viewing/{conversationId}", presenceHandler.HandleSetViewing).Methods("PUT", "OPTIONS").Name("set-viewing")
	r.HandleFunc("/presence/viewing", presenceHandler.HandleClearViewing).Methods("DELETE", "OPTIONS").Name("clear-viewing")

	plansRepo := plans.NewRepo(s.dbPool)
	weekRoller := plans.NewRoller(plans.RollerParams{
		Repo:           plansRepo,
		Metrics:        s.metricsManager,
		ResyncAttempts: uint64(s.config.Rollover.ResyncAttempts),
		ResyncDelay:    time.Duration(s.config.Rollover.ResyncDelayMs) * time.Millisecond,
	})
	plansHandler := plans.NewHandler(plansRepo, weekRoller)
	r.HandleFunc("/plan", plansHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plan/generate", plansHandler.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-plan")
	r.HandleFunc("/plan/templates", plansHandler.HandleTemplates).Methods("GET", "OPTIONS").Name("plan-templates")
	r.HandleFunc("/plan/active/{athleteId}", plansHandler.HandleGetActive).Methods("GET", "OPTIONS").Name("get-active-plan")
	r.HandleFunc("/plan/list/{athleteId}", plansHandler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plan/{id}/rollover", plansHandler.HandleRollover).Methods("POST", "OPTIONS").Name("plan-rollover")
	r.HandleFunc("/plan/{id}", plansHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plan/{id}", plansHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.presenceManager)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	log.Debugln("stopping presence pollers ...")
	s.presenceManager.StopAll()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
