package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

var proposedStartPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[ T](\d{2}):(\d{2})$`)

// ParseProposedStart converts a wall-clock "YYYY-MM-DD HH:MM" string into an instant,
// reading the fields as UTC. A full RFC 3339 timestamp is accepted as well.
func ParseProposedStart(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, NewErrorValidation("start time is required", ProposedStartHint)
	}

	if m := proposedStartPattern.FindStringSubmatch(s); m != nil {
		fields := make([]int, 5)
		for i := range fields {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				return time.Time{}, NewErrorValidation("start time is not numeric", ProposedStartHint)
			}
			fields[i] = v
		}
		year, month, day, hour, minute := fields[0], fields[1], fields[2], fields[3], fields[4]

		t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
		// time.Date normalizes overflow, so a round trip catches Feb 30 or hour 24
		if t.Year() != year || int(t.Month()) != month || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
			return time.Time{}, NewErrorValidation("start time is out of range", ProposedStartHint)
		}
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, NewErrorValidation("start time has an unexpected format", ProposedStartHint)
}

// SortByEffectiveStart orders sessions by effective start, ascending.
// Sessions sharing a start keep their incoming order.
func SortByEffectiveStart(sessions []Session) {
	slices.SortStableFunc(sessions, func(a, b Session) int {
		return a.EffectiveStartAt().Compare(b.EffectiveStartAt())
	})
}

// SortResponses puts every yes before every no, newest first within a group.
func SortResponses(responses []SessionResponse) {
	rank := func(v ResponseValue) int {
		if v == ResponseYes {
			return 0
		}
		return 1
	}
	slices.SortStableFunc(responses, func(a, b SessionResponse) int {
		if ra, rb := rank(a.Response), rank(b.Response); ra != rb {
			return ra - rb
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return b.RespondedAt.Compare(a.RespondedAt)
	})
}

// DedupeIDs trims ids, drops blanks and keeps the first occurrence of each.
func DedupeIDs(ids []string) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(result, id) {
			continue
		}
		result = append(result, id)
	}
	return result
}

// IsValidID reports whether id has the canonical uuid form used for row ids.
func IsValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
