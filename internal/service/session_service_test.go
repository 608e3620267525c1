package service

import (
	"path/filepath"
	"testing"

	"spelldrill/internal/models"
	"spelldrill/internal/repository"
)

type scriptedAnswer struct {
	text string
	ctl  Control
}

// scriptedPrompter feeds a fixed sequence of answers and records every
// Present call. Running out of answers quits, so a buggy driver cannot
// loop forever in a test.
type scriptedPrompter struct {
	answers   []scriptedAnswer
	presented []string
	replays   int
}

func (p *scriptedPrompter) Present(rec models.WordRecord, pos, total int, replay bool) {
	p.presented = append(p.presented, rec.Word)
	if replay {
		p.replays++
	}
}

func (p *scriptedPrompter) ReadAnswer() (string, Control, error) {
	if len(p.answers) == 0 {
		return "", ControlQuit, nil
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a.text, a.ctl, nil
}

type recordedFeedback struct {
	correct    []string
	incorrect  []string
	saveFailed []string
}

func (f *recordedFeedback) Correct(rec models.WordRecord) { f.correct = append(f.correct, rec.Word) }
func (f *recordedFeedback) Incorrect(rec models.WordRecord, answer string) {
	f.incorrect = append(f.incorrect, rec.Word)
}
func (f *recordedFeedback) SaveFailed(rec models.WordRecord, err error) {
	f.saveFailed = append(f.saveFailed, rec.Word)
}

func newTestDriver(t *testing.T, records []models.WordRecord, answers ...scriptedAnswer) (*SessionDriver, *repository.WordRepository, *scriptedPrompter, *recordedFeedback) {
	t.Helper()
	repo := repository.NewWordRepository(filepath.Join(t.TempDir(), "kid.csv"))
	if err := repo.Save(records); err != nil {
		t.Fatal(err)
	}
	prompter := &scriptedPrompter{answers: answers}
	feedback := &recordedFeedback{}
	return NewSessionDriver(repo, prompter, feedback), repo, prompter, feedback
}

func TestRunPromptsOnlyDueWords(t *testing.T) {
	today := date(2026, 3, 14)
	records := []models.WordRecord{
		{Word: "Apple"},                             // never reviewed: due
		{Word: "Banana", LastReviewed: today},       // reviewed today: not due
		{Word: "Cherry", Streak: 5, Mastered: true}, // mastered: not due
	}

	driver, repo, prompter, feedback := newTestDriver(t, records,
		scriptedAnswer{text: "Apple"},
	)

	result, _, err := driver.Run(records, today, SessionOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if len(prompter.presented) != 1 || prompter.presented[0] != "Apple" {
		t.Errorf("presented = %v, want [Apple]", prompter.presented)
	}
	if result.Due != 1 || result.Reviewed != 1 || result.Correct != 1 || result.Quit {
		t.Errorf("result = %+v", result)
	}
	if len(feedback.correct) != 1 {
		t.Errorf("feedback.correct = %v", feedback.correct)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	apple := repository.Find(loaded, "Apple")
	if apple == nil || apple.Streak != 1 || !apple.LastReviewed.Equal(today) {
		t.Errorf("Apple after session = %+v", apple)
	}
	banana := repository.Find(loaded, "Banana")
	if banana == nil || banana.Streak != 0 || !banana.LastReviewed.Equal(today) {
		t.Errorf("Banana was touched: %+v", banana)
	}
}

func TestRunQuitLeavesCurrentWordUntouched(t *testing.T) {
	today := date(2026, 3, 14)
	records := []models.WordRecord{
		{Word: "Apple", Streak: 1, LastReviewed: today.AddDate(0, 0, -1)},
		{Word: "Banana", Streak: 2, LastReviewed: today.AddDate(0, 0, -1)},
	}

	driver, repo, _, _ := newTestDriver(t, records,
		scriptedAnswer{text: "Apple"},
		scriptedAnswer{ctl: ControlQuit},
	)

	result, _, err := driver.Run(records, today, SessionOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Quit || result.Reviewed != 1 {
		t.Errorf("result = %+v, want Quit with 1 reviewed", result)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	apple := repository.Find(loaded, "Apple")
	if apple.Streak != 2 || !apple.LastReviewed.Equal(today) {
		t.Errorf("Apple not persisted before quit: %+v", apple)
	}
	banana := repository.Find(loaded, "Banana")
	if banana.Streak != 2 || !banana.LastReviewed.Equal(today.AddDate(0, 0, -1)) {
		t.Errorf("Banana modified by quit: %+v", banana)
	}
}

func TestRunReplayDoesNotConsumeAttempt(t *testing.T) {
	today := date(2026, 3, 14)
	records := []models.WordRecord{{Word: "Apple"}}

	driver, _, prompter, _ := newTestDriver(t, records,
		scriptedAnswer{ctl: ControlReplay},
		scriptedAnswer{ctl: ControlReplay},
		scriptedAnswer{text: "Apple"},
	)

	result, _, err := driver.Run(records, today, SessionOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Reviewed != 1 || result.Correct != 1 {
		t.Errorf("result = %+v, want one correct review", result)
	}
	if len(prompter.presented) != 3 || prompter.replays != 2 {
		t.Errorf("presented %d times with %d replays, want 3 and 2", len(prompter.presented), prompter.replays)
	}
}

func TestRunComparison(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		answer      string
		wantCorrect bool
	}{
		{
			name:        "exact match",
			word:        "Paris",
			answer:      "Paris",
			wantCorrect: true,
		},
		{
			name:        "surrounding whitespace trimmed",
			word:        "Paris",
			answer:      "  Paris  ",
			wantCorrect: true,
		},
		{
			name:        "wrong capitalization counts as wrong",
			word:        "Paris",
			answer:      "paris",
			wantCorrect: false,
		},
		{
			name:        "accents must match",
			word:        "Ähre",
			answer:      "Ahre",
			wantCorrect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := date(2026, 3, 14)
			records := []models.WordRecord{{Word: tt.word, Streak: 3, LastReviewed: today.AddDate(0, 0, -1)}}

			driver, repo, _, feedback := newTestDriver(t, records, scriptedAnswer{text: tt.answer})
			if _, _, err := driver.Run(records, today, SessionOptions{}); err != nil {
				t.Fatal(err)
			}

			loaded, err := repo.Load()
			if err != nil {
				t.Fatal(err)
			}
			rec := loaded[0]
			if tt.wantCorrect {
				if rec.Streak != 4 || len(feedback.correct) != 1 {
					t.Errorf("correct answer not credited: %+v, feedback %+v", rec, feedback)
				}
			} else {
				if rec.Streak != 0 || len(feedback.incorrect) != 1 {
					t.Errorf("wrong answer not reset: %+v, feedback %+v", rec, feedback)
				}
			}
		})
	}
}

func TestRunLimit(t *testing.T) {
	today := date(2026, 3, 14)
	records := []models.WordRecord{{Word: "a"}, {Word: "b"}, {Word: "c"}}

	driver, _, prompter, _ := newTestDriver(t, records,
		scriptedAnswer{text: "a"},
		scriptedAnswer{text: "b"},
	)

	result, _, err := driver.Run(records, today, SessionOptions{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if result.Due != 2 || result.Reviewed != 2 {
		t.Errorf("result = %+v, want 2 due and 2 reviewed", result)
	}
	if len(prompter.presented) != 2 {
		t.Errorf("presented = %v, want 2 words", prompter.presented)
	}
}

func TestRunCountsFreshMastery(t *testing.T) {
	today := date(2026, 3, 14)
	records := []models.WordRecord{
		{Word: "almost", Streak: 4, LastReviewed: today.AddDate(0, 0, -1)},
	}

	driver, repo, _, _ := newTestDriver(t, records, scriptedAnswer{text: "almost"})
	result, _, err := driver.Run(records, today, SessionOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Mastered != 1 {
		t.Errorf("result.Mastered = %d, want 1", result.Mastered)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !loaded[0].Mastered || loaded[0].Streak != 5 {
		t.Errorf("record after mastery = %+v", loaded[0])
	}
}
