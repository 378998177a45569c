package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session stores
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

type (
	ServerConfig struct {
		Host                   string
		Address                string
		DebugHost              string
		ShutdownTimeout        time.Duration
		SessionExpirationDelta time.Duration
		DisableReqLogs         bool
	}

	DatabaseConfig struct {
		Engine     string
		Host       string
		Port       string
		Name       string
		User       string
		Password   string
		DisableTLS bool
	}

	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		SessionStore string
		Server       ServerConfig
		Database     DatabaseConfig
	}
)

func (db DatabaseConfig) Address() string {
	return net.JoinHostPort(db.Host, db.Port)
}

// NewConfig loads the configuration of the current environment.
// ENV is one of DEV (local; default), TEST, QA or PROD; every other variable is read with ENV as prefix,
// e.g. DEV_SECRETKEY. A `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Student Achievement Hub")
	v.SetDefault("build", "develop")
	v.SetDefault("secretKey", "x9$k2-lq)vhm!4+ty=cw&p3z(d!8r@u#e1(b#sf0^$gn7a")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sessionStore", SessionStoreMemory)
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddress", ":8000")
	v.SetDefault("serverDebugHost", "localhost:4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("sessionExpirationDelta", 24*time.Hour)
	v.SetDefault("disableReqLogs", false)
	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbName", "studenthub")
	v.SetDefault("dbUser", "studenthub")
	v.SetDefault("dbPassword", "")
	v.SetDefault("dbDisableTLS", true)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("disableReqLogs", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
		SessionStore: strings.ToLower(v.GetString("sessionStore")),
		Server: ServerConfig{
			Host:                   v.GetString("serverHost"),
			Address:                v.GetString("serverAddress"),
			DebugHost:              v.GetString("serverDebugHost"),
			ShutdownTimeout:        v.GetDuration("serverShutdownTimeout"),
			SessionExpirationDelta: v.GetDuration("sessionExpirationDelta"),
			DisableReqLogs:         v.GetBool("disableReqLogs"),
		},
		Database: DatabaseConfig{
			Engine:     v.GetString("dbEngine"),
			Host:       v.GetString("dbHost"),
			Port:       v.GetString("dbPort"),
			Name:       v.GetString("dbName"),
			User:       v.GetString("dbUser"),
			Password:   v.GetString("dbPassword"),
			DisableTLS: v.GetBool("dbDisableTLS"),
		},
	}
}
