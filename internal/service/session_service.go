package service

import (
	"math/rand"
	"strings"
	"time"

	"spelldrill/internal/models"
	"spelldrill/internal/repository"
)

// Control is a recognized non-answer input during a review session
type Control int

const (
	ControlNone Control = iota
	ControlReplay
	ControlQuit
)

// Prompter presents one word and collects a typed answer for it.
// Present may be called again for the same word when the user asks
// for a replay; replay re-presentations never consume an attempt.
type Prompter interface {
	Present(rec models.WordRecord, pos, total int, replay bool)
	ReadAnswer() (string, Control, error)
}

// Feedback reports per-word results back to the user
type Feedback interface {
	Correct(rec models.WordRecord)
	Incorrect(rec models.WordRecord, answer string)
	SaveFailed(rec models.WordRecord, err error)
}

// SessionOptions tune one review pass
type SessionOptions struct {
	Limit   int  // review at most N words; 0 means no limit
	Shuffle bool // randomize queue order instead of file order
}

// SessionResult summarizes one review pass
type SessionResult struct {
	Due      int
	Reviewed int
	Correct  int
	Mastered int // words that reached mastery during this session
	Quit     bool
}

// SessionDriver orchestrates review sessions: it walks the due subset,
// applies review outcomes, and persists every answered word before moving on
type SessionDriver struct {
	repo     *repository.WordRepository
	prompter Prompter
	feedback Feedback
}

// NewSessionDriver creates a new session driver
func NewSessionDriver(repo *repository.WordRepository, prompter Prompter, feedback Feedback) *SessionDriver {
	return &SessionDriver{repo: repo, prompter: prompter, feedback: feedback}
}

// Run reviews each due record once. Answers are compared to the stored word
// exactly, after trimming surrounding whitespace; capitalization must match.
// Every answered word is persisted immediately, so quitting mid-session never
// loses a completed attempt and never touches the word being prompted.
// Run returns the updated record set alongside the session summary.
func (d *SessionDriver) Run(records []models.WordRecord, today time.Time, opts SessionOptions) (SessionResult, []models.WordRecord, error) {
	queue := DueRecords(records, today)

	if opts.Shuffle {
		rand.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	}
	if opts.Limit > 0 && len(queue) > opts.Limit {
		queue = queue[:opts.Limit]
	}

	result := SessionResult{Due: len(queue)}

	for i, rec := range queue {
		answer, ctl, err := d.askOne(rec, i+1, len(queue))
		if err != nil {
			return result, records, err
		}
		if ctl == ControlQuit {
			result.Quit = true
			return result, records, nil
		}

		correct := strings.TrimSpace(answer) == rec.Word
		updated := ApplyOutcome(rec, today, correct)

		// Persist before any feedback so an interrupt right after the
		// answer still finds the attempt on disk.
		records, err = d.repo.UpsertAndSave(records, updated)
		if err != nil {
			d.feedback.SaveFailed(updated, err)
		}

		result.Reviewed++
		if correct {
			result.Correct++
			if updated.Mastered && !rec.Mastered {
				result.Mastered++
			}
			d.feedback.Correct(updated)
		} else {
			d.feedback.Incorrect(updated, answer)
		}
	}

	return result, records, nil
}

// askOne presents a word until it gets an answer or a quit; replay requests
// re-present the prompt without counting as an attempt
func (d *SessionDriver) askOne(rec models.WordRecord, pos, total int) (string, Control, error) {
	d.prompter.Present(rec, pos, total, false)
	for {
		answer, ctl, err := d.prompter.ReadAnswer()
		if err != nil {
			return "", ControlNone, err
		}
		switch ctl {
		case ControlReplay:
			d.prompter.Present(rec, pos, total, true)
		case ControlQuit:
			return "", ControlQuit, nil
		default:
			return answer, ControlNone, nil
		}
	}
}
