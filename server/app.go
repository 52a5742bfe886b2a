package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nadi/config"
	"nadi/internal/api"
	"nadi/internal/db"
	"nadi/internal/health"
	"nadi/internal/logs"
	"nadi/internal/middleware"
	"nadi/internal/models"
	"nadi/internal/repo"
	"nadi/internal/seed"
	"nadi/internal/session"
	"nadi/internal/stats"
	"nadi/internal/store"
	"nadi/internal/token"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	/* 1) Логи */
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	/* 2) DB (опционально) */
	if drv := a.cfg.Database.Driver; drv != "" {
		d, err := db.Open(drv, a.cfg.Database.DSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		a.db = d

		if err := a.db.AutoMigrate(&models.User{},
			&models.Asset{},
			&models.MaintenanceDocket{},
			&models.Notification{},
			&models.AssetSetting{}); err != nil {
			log.Fatalf("db migrate failed: %v", err)
		}
	}

	/* 3) Хранилища: разделяемый стор докетов + уведомления + активы */
	var (
		dir        session.UserDirectory
		dockets    *store.DocketStore
		notifStore *store.NotificationStore
		assets     api.AssetStore
		settings   api.SettingStore
	)

	if a.db != nil {
		users := repo.NewUserStore(a.db)
		assetRepo := repo.NewAssetStore(a.db)
		settingRepo := repo.NewSettingStore(a.db)
		docketPersist := repo.NewDocketPersistence(a.db)
		notifPersist := repo.NewNotificationPersistence(a.db)

		notifStore = store.NewNotificationStore(notifPersist)
		dockets = store.NewDocketStore(notifStore, docketPersist)

		if a.cfg.Seed.Demo {
			a.seedDatabase(users, assetRepo, settingRepo, docketPersist)
		}
		if err := notifStore.Load(context.Background()); err != nil {
			log.Fatalf("notification load failed: %v", err)
		}
		if err := dockets.Load(context.Background()); err != nil {
			log.Fatalf("docket load failed: %v", err)
		}

		dir = users
		assets = newAssetAdapter(assetRepo)
		settings = newSettingAdapter(settingRepo)
	} else {
		notifStore = store.NewNotificationStore(nil)
		dockets = store.NewDocketStore(notifStore, nil)

		memAssets := store.NewAssetStore()
		memSettings := store.NewSettingStore()
		var users []models.User
		if a.cfg.Seed.Demo {
			users = seed.Users()
			ctx := context.Background()
			for _, as := range seed.Assets() {
				as := as
				_ = memAssets.Create(ctx, &as)
			}
			for _, st := range seed.Settings() {
				st := st
				_ = memSettings.Create(ctx, &st)
			}
			dockets.Preload(seed.Dockets())
		}
		dir = store.NewUserDirectory(users)
		assets = memAssets
		settings = memSettings
	}

	/* 4) Сессии и статистика */
	sessions := session.NewManager(dir, token.NewManager(a.cfg.Auth.TokenSecret, a.cfg.Auth.TokenTTL))
	kpis := stats.New(dockets, statsAssets{as: assets})

	/* 5) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
	)

	/* 6) Health */
	if a.db != nil {
		health.RegisterRoutesWithDB(a.Router, a.db) // /healthz, /readyz
	} else {
		health.RegisterRoutes(a.Router) // только /healthz
	}

	/* 7) API */
	api.RegisterRoutes(a.Router, &api.Handler{
		Sessions:      sessions,
		Dockets:       dockets,
		Notifications: notifStore,
		Assets:        assets,
		Settings:      settings,
		Stats:         kpis,
	})

	/* (необязательно) вывести известные маршруты в лог при старте */
	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

// seedDatabase наполняет пустую БД демо-набором. Непустая БД не трогается.
func (a *App) seedDatabase(users *repo.UserStore, assets *repo.AssetStore, settings *repo.SettingStore, dockets *repo.DocketPersistence) {
	ctx := context.Background()

	n, err := users.Count(ctx)
	if err != nil {
		log.Fatalf("seed: user count failed: %v", err)
	}
	if n > 0 {
		return
	}

	for _, u := range seed.Users() {
		u := u
		if err := users.Create(ctx, &u); err != nil {
			log.Fatalf("seed: user %s: %v", u.Email, err)
		}
	}
	for _, as := range seed.Assets() {
		as := as
		if err := assets.Create(ctx, &as); err != nil {
			log.Fatalf("seed: asset %s: %v", as.Name, err)
		}
	}
	for _, st := range seed.Settings() {
		st := st
		if err := settings.Create(ctx, &st); err != nil {
			log.Fatalf("seed: setting %s: %v", st.Name, err)
		}
	}
	for _, d := range seed.Dockets() {
		d := d
		if err := dockets.Save(ctx, &d); err != nil {
			log.Fatalf("seed: docket %s: %v", d.DocketNo, err)
		}
	}
	logs.Logger.Info("demo data seeded")
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	// Жёсткие таймауты — это важно для production
	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
