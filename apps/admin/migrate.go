package main

import (
	"github.com/pressly/goose/v3"

	"github.com/sujalpowar2903-sys/studenthub123/storage/database"
)

var gooseRunFunc = goose.Run // mockable

// migrate runs goose against the embedded migrations; database sets them as goose's base FS.
func (cli *commandLine) migrate(args []string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db, database.MigrationsDir, arguments...)
}
