package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrPlanNotFound  = errors.New("workout plan not found")
	ErrPlanNotActive = errors.New("workout plan is not active")
)

// Plan (DB level type) is one week of an athlete's workout program.
// Moving to the next week archives the plan and creates a successor
// with the same payload; the training logs live in their own tables,
// so the new week starts empty.
type Plan struct {
	ID          int             `json:"id"`
	AthleteID   int             `json:"athleteId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"createdAt"`
}

var weekSuffixRe = regexp.MustCompile(`(?i)\s*-\s*week\s+(\d+)\s*$`)

// WeekNumber extracts the week number from a plan title, defaulting to
// 1 when the title carries no week suffix.
func WeekNumber(title string) int {
	match := weekSuffixRe.FindStringSubmatch(title)
	if match == nil {
		return 1
	}
	week, err := strconv.Atoi(match[1])
	if err != nil || week < 1 {
		return 1
	}
	return week
}

// NextWeekTitle bumps the week suffix of a plan title, adding one when
// missing: "Strength Block - Week 3" -> "Strength Block - Week 4",
// "Strength Block" -> "Strength Block - Week 2".
func NextWeekTitle(title string) (string, int) {
	nextWeek := WeekNumber(title) + 1
	base := weekSuffixRe.ReplaceAllString(title, "")
	return fmt.Sprintf("%s - Week %d", base, nextWeek), nextWeek
}
