package ingest

import (
	"regexp"
	"strings"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

var priorityTokenPattern = regexp.MustCompile(`(?i)\bP([1-4])\b`)

// priorityWords maps descriptive labels to canonical codes, matched by
// substring in order.
var priorityWords = []struct {
	word     string
	priority domain.Priority
}{
	{"CRITICAL", domain.PriorityP1},
	{"URGENT", domain.PriorityP1},
	{"HIGH", domain.PriorityP2},
	{"MEDIUM", domain.PriorityP3},
	{"NORMAL", domain.PriorityP3},
	{"LOW", domain.PriorityP4},
}

// NormalizePriority maps a free-text priority label to one of the four
// canonical codes. It tries an exact match first, then an embedded P1-P4
// token, then a descriptive word map. It returns false when nothing matches;
// the caller decides whether that warrants a warning.
func NormalizePriority(raw string) (domain.Priority, bool) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if upper == "" {
		return "", false
	}

	switch domain.Priority(upper) {
	case domain.PriorityP1, domain.PriorityP2, domain.PriorityP3, domain.PriorityP4:
		return domain.Priority(upper), true
	}

	if m := priorityTokenPattern.FindStringSubmatch(upper); m != nil {
		return domain.Priority("P" + m[1]), true
	}

	for _, entry := range priorityWords {
		if strings.Contains(upper, entry.word) {
			return entry.priority, true
		}
	}

	return "", false
}
