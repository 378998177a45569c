package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/achievement"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

// NewValidator returns a validator with every application validator registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	session.InitValidators(validate, translator)
	achievement.InitValidators(validate, translator)
	return validate, translator
}

func CreateSession(t *testing.T, repo session.Repository, role session.Role, createdAt ...time.Time) session.Session {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	sess, err := repo.CreateSession(context.Background(), session.Session{
		ID:        uuid.New().String(),
		Role:      role,
		CreatedAt: tstamp,
	})
	if err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}
	return sess
}

// StrPtr returns a pointer to s, for optional request fields.
func StrPtr(s string) *string { return &s }
