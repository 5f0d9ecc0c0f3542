package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/totpvault/modules/auth"
	"github.com/dmitrymomot/totpvault/modules/registration"
	"github.com/dmitrymomot/totpvault/modules/token"
	"github.com/dmitrymomot/totpvault/pkg/config"
	"github.com/dmitrymomot/totpvault/pkg/email"
	"github.com/dmitrymomot/totpvault/pkg/httpserver"
	"github.com/dmitrymomot/totpvault/pkg/httpx"
	"github.com/dmitrymomot/totpvault/pkg/logger"
	storemongo "github.com/dmitrymomot/totpvault/pkg/mongo"
	"github.com/dmitrymomot/totpvault/pkg/rbac"
	"github.com/dmitrymomot/totpvault/pkg/totp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		logCfg    logger.Config
		mongoCfg  storemongo.Config
		httpCfg   httpserver.Config
		bootCfg   registration.BootstrapConfig
		authCfg   auth.Config
		emailCfg  email.Config
		totpCfg   totp.Config
		issuerCfg token.IssuerConfig
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&bootCfg)
	config.MustLoad(&authCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&totpCfg)
	config.MustLoad(&issuerCfg)

	log := logger.NewFromConfig(logCfg, logger.WithService("totpvault"))
	logger.SetAsDefault(log)

	db, err := storemongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		log.Error("failed to connect to mongo", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongo", logger.Error(err))
		}
	}()

	var notifier email.EmailSender
	if emailCfg.PostmarkServerToken != "" {
		notifier, err = email.NewPostmarkClient(emailCfg)
		if err != nil {
			log.Error("failed to init postmark client", logger.Error(err))
			os.Exit(1)
		}
	} else {
		notifier = email.NewDevSender(log)
	}

	var encryptionKey []byte
	switch key, err := totp.GetEncryptionKey(totpCfg); {
	case err == nil:
		encryptionKey = key
	case errors.Is(err, totp.ErrEncryptionKeyNotSet):
		log.Warn("no encryption key configured, ledger secrets stored in plaintext")
	default:
		log.Error("failed to load encryption key", logger.Error(err))
		os.Exit(1)
	}

	gate := rbac.Default()

	regSvc := registration.NewService(
		registration.NewMongoStorage(db),
		gate,
		bootCfg,
		registration.WithLogger(log),
		registration.WithNotifier(notifier),
	)
	authSvc := auth.NewService(
		auth.NewMongoStorage(db),
		authCfg,
		auth.WithLogger(log),
	)

	tokenStorage := token.NewMongoStorage(db)
	ledger := token.NewLedger(tokenStorage,
		token.WithLedgerLogger(log),
		token.WithEncryptionKey(encryptionKey),
	)
	issuer := token.NewIssuer(tokenStorage, ledger, issuerCfg, token.WithIssuerLogger(log))
	tokenHandler := token.NewHandler(issuer, ledger)

	healthcheck := storemongo.Healthcheck(db.Client())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := healthcheck(req.Context()); err != nil {
			httpx.Error(w, http.StatusServiceUnavailable, err)
			return
		}
		httpx.Message(w, http.StatusOK, "ok")
	})

	r.Route("/api", func(api chi.Router) {
		regSvc.Register(api)
		authSvc.Register(api)
		tokenHandler.Register(api)
	})

	srv := httpserver.New(httpCfg, log)
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

// cors allows the bundled frontend to call the API from another origin.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Role")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
