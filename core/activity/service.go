package activity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/sujalpowar2903-sys/studenthub123/core"
)

var (
	errInvalidOrdering = errors.New("invalid ordering")

	orderableFields = map[string]func(a, b Activity) int{
		"id":       func(a, b Activity) int { return a.ID - b.ID },
		"title":    func(a, b Activity) int { return strings.Compare(a.Title, b.Title) },
		"date":     func(a, b Activity) int { return strings.Compare(a.Date, b.Date) },
		"category": func(a, b Activity) int { return strings.Compare(a.Category, b.Category) },
		"status":   func(a, b Activity) int { return strings.Compare(string(a.Status), string(b.Status)) },
	}
)

// Service serves the dashboard from static records. Nothing is ever mutated.
type Service struct {
	validate   *validator.Validate
	profile    Profile
	stats      []Tile
	activities []Activity
}

func NewService(validate *validator.Validate) *Service {
	return &Service{
		validate:   validate,
		profile:    seedProfile,
		stats:      seedStats,
		activities: seedActivities,
	}
}

func (svc *Service) entries(activities []Activity) []Entry {
	entries := make([]Entry, 0, len(activities))
	for _, a := range activities {
		entries = append(entries, Entry{Activity: a, Badge: BadgeFor(a.Status)})
	}
	return entries
}

// Dashboard returns the statistics, the activity history in its fixed order and the available actions.
func (svc *Service) Dashboard() Dashboard {
	stats := make([]Tile, len(svc.stats))
	copy(stats, svc.stats)
	actions := make([]Action, len(seedActions))
	copy(actions, seedActions)

	return Dashboard{
		Profile:    svc.profile,
		Stats:      stats,
		Activities: svc.entries(svc.activities),
		Actions:    actions,
		Logout:     logoutAction,
	}
}

// Query applies AND operation on the set QueryFilter fields, then sorts by ordering.
// QueryFilter.Search does a case-insensitive match on Activity.Title or Activity.Description.
// Without ordering, the seeded order is kept.
func (svc *Service) Query(filter QueryFilter, ordering []core.DBOrdering) ([]Entry, error) {
	filter.Clean()
	if err := svc.validate.Struct(filter); err != nil {
		return nil, err
	}
	for _, ord := range ordering {
		if _, ok := orderableFields[ord.Field]; !ok {
			return nil, core.NewValidationError(
				errInvalidOrdering,
				core.FieldError{Field: "ordering", Error: fmt.Sprintf("cannot order by %q", ord.Field)},
			)
		}
	}

	found := make([]Activity, 0, len(svc.activities))
	for _, a := range svc.activities {
		if filter.IsEmpty() || filter.match(a) {
			found = append(found, a)
		}
	}

	if len(ordering) > 0 {
		sort.SliceStable(found, func(i, j int) bool {
			for _, ord := range ordering {
				c := orderableFields[ord.Field](found[i], found[j])
				if c == 0 {
					continue
				}
				if ord.Ascending {
					return c < 0
				}
				return c > 0
			}
			return false
		})
	}
	return svc.entries(found), nil
}
