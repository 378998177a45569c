package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/sujalpowar2903-sys/studenthub123/apps/api/echo"
	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/achievement"
	"github.com/sujalpowar2903-sys/studenthub123/core/activity"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
	logsvc "github.com/sujalpowar2903-sys/studenthub123/services/logger"
	"github.com/sujalpowar2903-sys/studenthub123/storage/database"
	inmemdb "github.com/sujalpowar2903-sys/studenthub123/storage/database/inmem"
	sqlxrepos "github.com/sujalpowar2903-sys/studenthub123/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Close()

	// set up session storage
	sessRepo, closeRepo, err := setUpSessionRepository(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up session storage: %v", err), err)
	}
	defer func() {
		if err = closeRepo(); err != nil {
			logger.Error(fmt.Sprintf("closing session storage: %v", err), err)
		}
	}()

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	session.InitValidators(validate, translator)
	achievement.InitValidators(validate, translator)

	// set up services
	achievementSvc := achievement.NewService(validate, translator, logger)
	sessionSvc := session.NewService(sessRepo, validate)
	sessionSvc.OnEnd(achievementSvc.DiscardSession)
	activitySvc := activity.NewService(validate)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("sessionStore").Set(conf.SessionStore)
	expvar.Publish("openDrafts", expvar.Func(func() interface{} { return achievementSvc.Count() }))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:           conf,
			Logger:         logger,
			SessionSvc:     sessionSvc,
			ActivitySvc:    activitySvc,
			AchievementSvc: achievementSvc,
			Translator:     translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// setUpSessionRepository returns the configured session.Repository and a func releasing it.
func setUpSessionRepository(conf *core.Config) (session.Repository, func() error, error) {
	if conf.SessionStore != core.SessionStorePostgres {
		return inmemdb.NewSessionRepository(inmemdb.Open()), func() error { return nil }, nil
	}

	db, err := setUpDB(conf)
	if err != nil {
		return nil, nil, err
	}
	return sqlxrepos.NewSessionRepository(db), db.Close, nil
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
