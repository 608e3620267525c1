// Package console implements the terminal front end of a drill session:
// prompting, answer collection, feedback rendering, and the add/list views.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"spelldrill/internal/audio"
	"spelldrill/internal/i18n"
	"spelldrill/internal/models"
	"spelldrill/internal/service"
)

// Prompter reads typed answers from the terminal. With speech enabled it
// keeps the screen free of hints so the child cannot peek at the spelling.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	tr      *i18n.Translator
	speaker *audio.Speaker
}

// NewPrompter creates a terminal prompter
func NewPrompter(in io.Reader, out io.Writer, tr *i18n.Translator, speaker *audio.Speaker) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		tr:      tr,
		speaker: speaker,
	}
}

// Present shows (or speaks) the prompt for one word. The spelling itself is
// never printed before the answer.
func (p *Prompter) Present(rec models.WordRecord, pos, total int, replay bool) {
	if p.speaker.Enabled() {
		if rec.Phrase != "" {
			p.speaker.Speak(rec.Phrase, fmt.Sprintf("%s %s", p.tr.T("SAY_SPELL_NOW"), rec.Word))
		} else {
			p.speaker.Speak(p.tr.T("SAY_NEXT_WORD"), rec.Word)
		}
		return
	}

	fmt.Fprintln(p.out, strings.Repeat("=", 50))
	fmt.Fprintln(p.out, p.tr.T("PROGRESS", pos, total, rec.Streak, service.MasteryStreak))
	if rec.Phrase != "" {
		fmt.Fprintln(p.out, "  "+HighlightWordInPhrase(rec.Phrase, rec.Word))
	} else {
		fmt.Fprintln(p.out, "  "+p.tr.T("NO_PHRASE"))
	}
	if !replay {
		fmt.Fprintln(p.out, p.tr.T("CONTROLS_HINT"))
	}
}

// ReadAnswer reads one line and maps the replay/quit control words.
// An EOF on stdin ends the session like an explicit quit.
func (p *Prompter) ReadAnswer() (string, service.Control, error) {
	fmt.Fprint(p.out, p.tr.T("TYPE_WORD")+" ")
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", service.ControlQuit, nil
	}
	if err != nil && err != io.EOF {
		return "", service.ControlNone, err
	}

	p.speaker.Stop()

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "replay":
		return "", service.ControlReplay, nil
	case "quit":
		return "", service.ControlQuit, nil
	}
	return strings.TrimRight(line, "\r\n"), service.ControlNone, nil
}
