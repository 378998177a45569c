package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db      *sql.DB
	sessSvc *session.Service
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]  - run a goose migration command (up, down, status, ...)")
	fmt.Fprintln(cli.out, "  sessions [-role ROLE]   - list the active sessions, oldest first")
	fmt.Fprintln(cli.out, "  endsessions             - end every active session")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	sessionsCmd := flag.NewFlagSet("sessions", flag.ExitOnError)
	sessionsCmd.SetOutput(cli.out)
	sessionsRole := sessionsCmd.String("role", "", "Only list sessions with this role (student, faculty or admin).")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "sessions":
		if err := sessionsCmd.Parse(args[2:]); err != nil {
			return err
		}
		role := session.Role(*sessionsRole)
		if role != "" && !role.IsValid() {
			sessionsCmd.Usage()
			return errHelp
		}
		return cli.listSessions(context.Background(), role)
	case "endsessions":
		return cli.endSessions(context.Background())
	default:
		cli.printUsage()
		return errHelp
	}
}
