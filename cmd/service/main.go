package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/s21platform/quickchat/internal/client/blob"
	"github.com/s21platform/quickchat/internal/client/giphy"
	"github.com/s21platform/quickchat/internal/client/identity"
	"github.com/s21platform/quickchat/internal/client/stickers"
	"github.com/s21platform/quickchat/internal/config"
	api "github.com/s21platform/quickchat/internal/generated"
	"github.com/s21platform/quickchat/internal/infra"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/jwt"
	"github.com/s21platform/quickchat/internal/pkg/logger"
	"github.com/s21platform/quickchat/internal/pkg/metrics"
	"github.com/s21platform/quickchat/internal/pkg/validator"
	kv "github.com/s21platform/quickchat/internal/repository/badger"
	"github.com/s21platform/quickchat/internal/repository/memory"
	db "github.com/s21platform/quickchat/internal/repository/postgres"
	"github.com/s21platform/quickchat/internal/rest"
	"github.com/s21platform/quickchat/internal/service/attachment"
	"github.com/s21platform/quickchat/internal/service/composer"
	"github.com/s21platform/quickchat/internal/service/conversation"
	"github.com/s21platform/quickchat/internal/service/prefs"
	"github.com/s21platform/quickchat/internal/service/realtime"
	"github.com/s21platform/quickchat/internal/session"
)

const shutdownTimeout = 10 * time.Second

type store interface {
	conversation.Store
	composer.Store
	realtime.Store
	UpsertUser(ctx context.Context, user model.User) error
	ListMessages(ctx context.Context, q model.MessageQuery) (model.MessageList, error)
	Close()
}

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	log, closeLog := logger.New(cfg.Logger.Level, cfg.Logger.File, cfg.Service.Name, cfg.Platform.Env)
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.KeyLogger, log)

	g, ctx := errgroup.WithContext(ctx)

	var repo store
	switch cfg.Store.Driver {
	case config.MemoryStoreDriver:
		repo = memory.New()
	case config.PostgresStoreDriver:
		pg := db.New(cfg)
		g.Go(func() error {
			return pg.Listen(ctx)
		})
		repo = pg
	default:
		log.Error(fmt.Sprintf("unknown store driver %q", cfg.Store.Driver))
		return
	}
	defer repo.Close()

	prefsRepo, err := kv.New(cfg.Prefs.Path)
	if err != nil {
		log.Error(fmt.Sprintf("failed to open preferences: %v", err))
		return
	}
	defer func() { _ = prefsRepo.Close() }()
	recent := prefs.NewUsers(prefsRepo)

	blobClient := blob.New(cfg)
	defer blobClient.Close()

	identityClient := identity.New(cfg)
	defer identityClient.Close()

	stickerClient := stickers.New(cfg)
	defer stickerClient.Close()

	giphyClient := giphy.New(cfg)
	defer giphyClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry, cfg.Service.Name)

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Session.JWTSecret, cfg.Session.TokenTTL)

	conversations := conversation.NewRegistry(repo, vldtr, m, cfg.Store.StrictDedup)
	membership := conversation.NewMembership(repo)
	sync := realtime.New(repo, m)

	newComposer := func(conversationID, uid string) *composer.Composer {
		return composer.New(
			conversationID,
			uid,
			repo,
			attachment.New(blobClient, vldtr, m),
			vldtr,
			m,
			recent.For(uid),
			composer.DefaultTable,
		)
	}
	sessions := session.NewManager(identityClient, repo, jwtGenerator, giphyClient, newComposer, cfg.Giphy.Debounce)
	defer sessions.Close()

	handler := rest.New(sessions, conversations, membership, sync, repo, stickerClient, recent)

	router := chi.NewRouter()
	router.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, log)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next, jwtGenerator, "POST /api/v1/sessions")
		})
		api.HandlerFromMux(handler, r)
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Service.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g.Go(func() error {
		log.Info(fmt.Sprintf("listening on %s", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		sessions.Close()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(fmt.Sprintf("server error: %v", err))
	}
}
