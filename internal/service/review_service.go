package service

import (
	"time"

	"spelldrill/internal/models"
)

// MasteryStreak is the number of consecutive correct review days after
// which a word counts as mastered and leaves the review rotation.
const MasteryStreak = 5

// IsDue reports whether a word is eligible for review on the given day:
// not yet mastered and not already reviewed on that calendar date.
// A last-review date in the future (clock moved backwards) counts as
// reviewed: a free extra review is never granted.
func IsDue(rec models.WordRecord, today time.Time) bool {
	if rec.Mastered {
		return false
	}
	if rec.NeverReviewed() {
		return true
	}
	return models.DayOf(rec.LastReviewed).Before(models.DayOf(today))
}

// ApplyOutcome computes the word's state after one completed review attempt.
// It returns a new record and never mutates its input; the caller persists
// the result. A correct answer extends the streak by exactly one, an
// incorrect answer resets it to zero. Mastered is derived from the streak.
func ApplyOutcome(rec models.WordRecord, today time.Time, correct bool) models.WordRecord {
	out := rec
	out.LastReviewed = models.DayOf(today)
	if correct {
		out.Streak++
	} else {
		out.Streak = 0
	}
	out.Mastered = out.Streak >= MasteryStreak
	return out
}

// DueRecords filters the due subset, preserving the original file order
func DueRecords(records []models.WordRecord, today time.Time) []models.WordRecord {
	var due []models.WordRecord
	for _, rec := range records {
		if IsDue(rec, today) {
			due = append(due, rec)
		}
	}
	return due
}

// ReviewedTodayCount counts unmastered words already reviewed on the given day
func ReviewedTodayCount(records []models.WordRecord, today time.Time) int {
	n := 0
	for _, rec := range records {
		if !rec.Mastered && rec.ReviewedOn(today) {
			n++
		}
	}
	return n
}
