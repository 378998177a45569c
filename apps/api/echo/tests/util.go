package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/sujalpowar2903-sys/studenthub123/apps/api/echo"
	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/achievement"
	"github.com/sujalpowar2903-sys/studenthub123/core/activity"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
	logsvc "github.com/sujalpowar2903-sys/studenthub123/services/logger"
	inmemdb "github.com/sujalpowar2903-sys/studenthub123/storage/database/inmem"
	"github.com/sujalpowar2903-sys/studenthub123/tests"
)

var (
	conf = &core.Config{
		AppName:   "StudentHub",
		Env:       "test",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			SessionExpirationDelta: time.Hour,
			DisableReqLogs:         true,
		},
	}

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errSessionEnded = httpErr{Error: "session has ended"}
)

type testApp struct {
	Server
	sessRepo       session.Repository
	sessionSvc     *session.Service
	achievementSvc *achievement.Service
}

func setup(t *testing.T) testApp {
	// set up repos
	sessRepo := inmemdb.NewSessionRepository(inmemdb.Open())

	// set up services
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	validate, translator := testutil.NewValidator()
	achievementSvc := achievement.NewService(validate, translator, logger)
	sessionSvc := session.NewService(sessRepo, validate)
	sessionSvc.OnEnd(achievementSvc.DiscardSession)

	// set up server
	srv := NewServer(
		ServerDeps{
			Conf:           conf,
			Logger:         logger,
			SessionSvc:     sessionSvc,
			ActivitySvc:    activity.NewService(validate),
			AchievementSvc: achievementSvc,
			Translator:     translator,
		},
	)
	return testApp{
		Server:         srv,
		sessRepo:       sessRepo,
		sessionSvc:     sessionSvc,
		achievementSvc: achievementSvc,
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, sess session.Session) string {
	token, err := GenerateToken(conf, GetSessionClaims(conf, sess))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

// login creates a session with role and returns it with its token.
func login(t *testing.T, app testApp, role session.Role) (session.Session, string) {
	sess := testutil.CreateSession(t, app.sessRepo, role)
	return sess, getToken(t, sess)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, data []byte, v interface{}) {
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v; data %s", err, data)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHttpTests(t *testing.T, app testApp, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
