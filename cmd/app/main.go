package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-pos/internal/config"
	"cafe-pos/internal/db"
	httpx "cafe-pos/internal/http"
	"cafe-pos/internal/http/handlers"
	"cafe-pos/internal/logger"
	"cafe-pos/internal/metrics"
	"cafe-pos/internal/models"
	"cafe-pos/internal/rabbit"
	"cafe-pos/internal/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("cafe-pos", cfg.Common.LogLevel)

	store := &db.Store{Path: cfg.Store.Path}

	ordersRepo := &repo.Orders{Store: store, Log: log}
	usersRepo := &repo.Users{Store: store, Log: log}

	// Single subscriber to the order-inserted hook.
	ordersRepo.OnInserted = func() {
		metrics.OrdersInsertedTotal.Inc()
	}

	var pub *rabbit.Publisher
	if cfg.Rabbit.URL != "" {
		rc, err := rabbit.Connect(cfg.Rabbit.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbit connect failed")
		}
		defer func() { _ = rc.Close() }()

		if err := rabbit.DeclareEvents(rc.Ch); err != nil {
			log.Fatal().Err(err).Msg("declare events exchange failed")
		}
		pub = rabbit.NewPublisher(rc.Ch, rabbit.ExchangeEvents)
		log.Info().Msg("order event mirror enabled")
	}

	create := &handlers.CreateOrderHandler{
		Log: log,
		Insert: func(r *http.Request, totalAmount float64, totalItems int) int64 {
			id := ordersRepo.InsertOrder(r.Context(), totalAmount, totalItems)
			if id != repo.InsertFailed && pub != nil {
				evt := models.NewOrderPlacedEvent(id, totalAmount, totalItems, models.FormatOrderDate(time.Now()))
				pubCtx, cancel := rabbit.WithTimeout(r.Context())
				if err := pub.PublishJSON(pubCtx, evt.Type, evt, nil); err != nil {
					log.Error().Err(err).Int64("order_id", id).Msg("publish order event failed")
				}
				cancel()
			}
			return id
		},
	}

	list := &handlers.ListOrdersHandler{
		List: func(r *http.Request) []models.Order {
			return ordersRepo.ListConfirmedOrders(r.Context())
		},
	}

	salesH := &handlers.SalesHandler{
		Today: func(r *http.Request) []models.DailyTotal {
			return ordersRepo.DailyTotalsForToday(r.Context())
		},
		AllTime: func(r *http.Request) []models.DailyTotal {
			return ordersRepo.DailyTotalsAllTime(r.Context())
		},
	}

	usersH := &handlers.UsersHandler{
		Insert: func(r *http.Request, email, password string) bool {
			return usersRepo.InsertUser(r.Context(), email, password)
		},
		Exists: func(r *http.Request, email string) bool {
			return usersRepo.EmailExists(r.Context(), email)
		},
		Match: func(r *http.Request, email, password string) bool {
			return usersRepo.CredentialsMatch(r.Context(), email, password)
		},
	}

	router := httpx.NewRouter(&httpx.Handlers{
		Health:      handlers.Health,
		CreateOrder: create.ServeHTTP,
		ListOrders:  list.ServeHTTP,
		SalesToday:  salesH.ServeToday,
		SalesDaily:  salesH.ServeDaily,
		SalesWeekly: salesH.ServeWeekly,
		Signup:      usersH.Signup,
		Login:       usersH.Login,
		EmailExists: usersH.EmailExists,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("db", cfg.Store.Path).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
