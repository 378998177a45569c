package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
	"github.com/sujalpowar2903-sys/studenthub123/storage/database"
	sqlxrepos "github.com/sujalpowar2903-sys/studenthub123/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	if conf.SessionStore != core.SessionStorePostgres {
		logger.Fatalf("sessionStore is %q: the admin CLI needs the %q store", conf.SessionStore, core.SessionStorePostgres)
	}

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(err)

	// set up services
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	session.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		db:      db.DB,
		sessSvc: session.NewService(sqlxrepos.NewSessionRepository(db), validate),
		out:     os.Stdout,
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
