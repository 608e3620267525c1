package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"spelldrill/internal/audio"
	"spelldrill/internal/i18n"
	"spelldrill/internal/models"
	"spelldrill/internal/service"
)

var (
	successColor   = color.New(color.FgGreen)
	errorColor     = color.New(color.FgRed, color.Bold)
	highlightColor = color.New(color.FgYellow, color.Bold)
)

// Feedback renders per-word pass/fail results, spoken when speech is on
type Feedback struct {
	out     io.Writer
	tr      *i18n.Translator
	speaker *audio.Speaker
}

// NewFeedback creates a terminal feedback reporter
func NewFeedback(out io.Writer, tr *i18n.Translator, speaker *audio.Speaker) *Feedback {
	return &Feedback{out: out, tr: tr, speaker: speaker}
}

// Correct reports a right answer, celebrating a fresh mastery
func (f *Feedback) Correct(rec models.WordRecord) {
	if f.speaker.Enabled() {
		f.speaker.SpeakAndWait(f.tr.T("CORRECT"))
		return
	}
	if rec.Mastered {
		fmt.Fprintln(f.out, successColor.Sprint(f.tr.T("MASTERED_NOW", rec.Streak)))
	} else {
		fmt.Fprintln(f.out, successColor.Sprint(f.tr.T("CORRECT_STREAK", rec.Streak, service.MasteryStreak)))
	}
}

// Incorrect reports a wrong answer and reveals the expected spelling
func (f *Feedback) Incorrect(rec models.WordRecord, answer string) {
	if f.speaker.Enabled() {
		f.speaker.SpeakAndWait(f.tr.T("WRONG"), f.tr.T("EXPECTED", rec.Word))
		return
	}
	fmt.Fprintln(f.out, errorColor.Sprint(f.tr.T("WRONG")))
	fmt.Fprintln(f.out, errorColor.Sprint(f.tr.T("EXPECTED", highlightColor.Sprint(rec.Word))))
	fmt.Fprintln(f.out, errorColor.Sprint(f.tr.T("RESET_STREAK", service.MasteryStreak)))
}

// SaveFailed reports that a word's new state may not have reached disk.
// Reported per word, immediately, so the user knows which attempt is at risk.
func (f *Feedback) SaveFailed(rec models.WordRecord, err error) {
	fmt.Fprintln(f.out, errorColor.Sprint(f.tr.T("SAVE_FAILED", rec.Word, err)))
}
