package achievement

import (
	"sync"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sujalpowar2903-sys/studenthub123/core"
)

var (
	// errors
	ErrNotFound           = errors.New("draft not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrMissingInformation = errors.New("missing information")

	NowFunc = time.Now // mockable
)

// Service keeps the open Drafts in memory, each owned by one session.
// A Draft is gone once submitted or discarded; nothing is persisted.
type Service struct {
	mu         sync.RWMutex
	drafts     map[string]*Draft
	validate   *validator.Validate
	translator ut.Translator
	logger     core.Logger
}

func NewService(validate *validator.Validate, translator ut.Translator, logger core.Logger) *Service {
	return &Service{
		drafts:     make(map[string]*Draft),
		validate:   validate,
		translator: translator,
		logger:     logger,
	}
}

// draft must be called with svc.mu held.
func (svc *Service) draft(sessionID, id string) (*Draft, error) {
	d, ok := svc.drafts[id]
	if !ok || d.SessionID != sessionID {
		return nil, ErrNotFound
	}
	return d, nil
}

// edit runs fn on the session's Draft under the write lock and returns a copy of the result.
func (svc *Service) edit(sessionID, id string, fn func(d *Draft) error) (Draft, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	d, err := svc.draft(sessionID, id)
	if err != nil {
		return Draft{}, err
	}
	if err = fn(d); err != nil {
		return Draft{}, err
	}
	return d.clone(), nil
}

// Open starts a new, empty Draft for the session.
func (svc *Service) Open(sessionID string) Draft {
	d := &Draft{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Tags:        []string{},
		Attachments: []Attachment{},
		CreatedAt:   NowFunc().UTC(),
	}

	svc.mu.Lock()
	svc.drafts[d.ID] = d
	svc.mu.Unlock()

	return d.clone()
}

func (svc *Service) Get(sessionID, id string) (Draft, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	d, err := svc.draft(sessionID, id)
	if err != nil {
		return Draft{}, err
	}
	return d.clone(), nil
}

func (svc *Service) Update(sessionID, id string, du DraftUpdate) (Draft, error) {
	if err := du.Validate(svc.validate); err != nil {
		return Draft{}, err
	}
	return svc.edit(sessionID, id, func(d *Draft) error {
		d.Apply(du)
		return nil
	})
}

// AddTag reports whether the tag was added; blank and duplicate tags leave the Draft unchanged.
func (svc *Service) AddTag(sessionID, id, tag string) (Draft, bool, error) {
	var added bool
	d, err := svc.edit(sessionID, id, func(d *Draft) error {
		added = d.AddTag(tag)
		return nil
	})
	return d, added, err
}

func (svc *Service) RemoveTag(sessionID, id, tag string) (Draft, error) {
	return svc.edit(sessionID, id, func(d *Draft) error {
		d.RemoveTag(tag)
		return nil
	})
}

func (svc *Service) Attach(sessionID, id string, refs ...Attachment) (Draft, error) {
	return svc.edit(sessionID, id, func(d *Draft) error {
		d.Attach(refs...)
		return nil
	})
}

func (svc *Service) Detach(sessionID, id string, index int) (Draft, error) {
	return svc.edit(sessionID, id, func(d *Draft) error {
		if !d.Detach(index) {
			return ErrAttachmentNotFound
		}
		return nil
	})
}

// Discard drops the Draft, e.g. when the form is cancelled or left.
func (svc *Service) Discard(sessionID, id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, err := svc.draft(sessionID, id); err != nil {
		return err
	}
	delete(svc.drafts, id)
	return nil
}

// DiscardSession drops every Draft the session owns.
func (svc *Service) DiscardSession(sessionID string) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for id, d := range svc.drafts {
		if d.SessionID == sessionID {
			delete(svc.drafts, id)
		}
	}
}

// Submit checks the required fields (title, category and date).
// When one is missing, the Draft is kept for another try and the error is a *core.ValidationError
// wrapping ErrMissingInformation; the result then holds the notification and the field errors.
// Otherwise the Draft is discarded and the result points back to the dashboard.
func (svc *Service) Submit(sessionID, id string) (SubmitResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	d, err := svc.draft(sessionID, id)
	if err != nil {
		return SubmitResult{}, err
	}

	if err = d.Validate(svc.validate); err != nil {
		vErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return SubmitResult{}, errors.Wrap(err, "validating draft")
		}
		flds := core.TranslateFields(vErrs, svc.translator)
		res := SubmitResult{
			Notification: NotificationMissingInformation,
			Fields:       make(map[string]string, len(flds)),
		}
		for _, f := range flds {
			res.Fields[f.Field] = f.Error
		}
		return res, core.NewValidationError(ErrMissingInformation, flds...)
	}

	delete(svc.drafts, id)
	if svc.logger != nil {
		svc.logger.Info("achievement submitted for review", map[string]interface{}{
			"session":     sessionID,
			"category":    d.Category,
			"tags":        len(d.Tags),
			"attachments": len(d.Attachments),
		})
	}
	return SubmitResult{Notification: NotificationSubmitted, Redirect: core.RouteDashboard}, nil
}

// Count returns how many Drafts are open.
func (svc *Service) Count() int {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return len(svc.drafts)
}
