package models

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the on-disk layout for review dates (ISO calendar date, no time component)
const DateFormat = "2006-01-02"

// WordRecord represents one spelling word in a user's store
type WordRecord struct {
	Word         string
	Phrase       string
	Streak       int       // consecutive calendar days answered correctly
	LastReviewed time.Time // date-only; zero means never reviewed
	Mastered     bool
	Extra        []string // unrecognized trailing columns, preserved on save
}

// NeverReviewed reports whether the word has no review history yet
func (r *WordRecord) NeverReviewed() bool {
	return r.LastReviewed.IsZero()
}

// ReviewedOn reports whether the word was last reviewed on the given calendar day
func (r *WordRecord) ReviewedOn(day time.Time) bool {
	return !r.LastReviewed.IsZero() && SameDay(r.LastReviewed, day)
}

// Validate checks that the record can be stored
func (r *WordRecord) Validate() error {
	if strings.TrimSpace(r.Word) == "" {
		return fmt.Errorf("word must not be empty")
	}
	if r.Streak < 0 {
		return fmt.Errorf("streak must not be negative")
	}
	return nil
}

// SameDay reports whether two times fall on the same calendar date
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DayOf truncates a time to its calendar date in UTC, the granularity
// all review scheduling works at
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
