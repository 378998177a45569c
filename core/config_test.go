package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_SESSIONSTORE", "Postgres")
	t.Setenv("TEST_SESSIONEXPIRATIONDELTA", "2h")
	t.Setenv("TEST_DBPORT", "5433")

	conf := NewConfig()
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.True(t, conf.Server.DisableReqLogs)
	assert.Equal(t, SessionStorePostgres, conf.SessionStore)
	assert.Equal(t, 2*time.Hour, conf.Server.SessionExpirationDelta)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
	assert.Equal(t, "localhost:5433", conf.Database.Address())
}

func TestParseOrdering(t *testing.T) {
	tests := []struct {
		raw  string
		want []DBOrdering
	}{
		{raw: "", want: nil},
		{raw: "date", want: []DBOrdering{{Field: "date", Ascending: true}}},
		{raw: "-date, title", want: []DBOrdering{{Field: "date"}, {Field: "title", Ascending: true}}},
		{raw: ",-,status", want: []DBOrdering{{Field: "status", Ascending: true}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOrdering(tt.raw), "raw %q", tt.raw)
	}
	assert.Equal(t, "date DESC", DBOrdering{Field: "date"}.String())
}
