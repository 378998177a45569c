package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

func (cli *commandLine) listSessions(ctx context.Context, role session.Role) error {
	sessions, err := cli.sessSvc.Query(ctx, session.QueryFilter{Role: role})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROLE\tCREATED AT")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Role, s.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func (cli *commandLine) endSessions(ctx context.Context) error {
	n, err := cli.sessSvc.EndAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d session(s) ended\n", n)
	return nil
}
