package item

import (
	"errors"
	"strings"
	"time"
)

type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	Due       time.Time `json:"due"`
	Severity  int       `json:"severity"`
	Complete  bool      `json:"complete"`
	CreatedAt time.Time `json:"createdAt"`
}

// Draft - данные нового дела до сохранения. Due приходит строкой от клиента.
type Draft struct {
	Name     string
	Due      string
	Severity int
}

var dueLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

var errInvalidDue = errors.New("invalid due date")

// ParseDue разбирает срок в форматах RFC 3339, RFC 3339 без зоны и YYYY-MM-DD.
// Значения без зоны считаются UTC.
func ParseDue(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errInvalidDue
	}
	for _, layout := range dueLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalidDue
}
