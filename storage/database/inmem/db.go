package inmemdb

import (
	"sync"

	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

type (
	DB struct {
		session *sessionTable
	}

	sessionTable struct {
		sync.RWMutex
		table map[string]*session.Session
	}
)

func Open() *DB {
	return &DB{
		session: &sessionTable{table: make(map[string]*session.Session)},
	}
}
