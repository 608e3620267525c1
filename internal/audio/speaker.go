// Package audio speaks prompts through whatever local TTS engine is
// installed. Speech is strictly best-effort: when no engine exists the
// speaker warns once and every call degrades to a no-op, never an error.
package audio

import (
	"log"
	"os/exec"
	"strings"
	"time"
)

// speakTimeout bounds how long a synchronous speak call may block
const speakTimeout = 10 * time.Second

// engines lists known TTS commands in preference order. The first one
// found on PATH wins.
var engines = []struct {
	name string
	args func(lang, text string) []string
}{
	{"spd-say", func(lang, text string) []string { return []string{"-l", lang, text} }},
	{"espeak-ng", func(lang, text string) []string { return []string{"-v", lang, text} }},
	{"espeak", func(lang, text string) []string { return []string{"-v", lang, text} }},
	{"say", func(lang, text string) []string { return []string{text} }},
}

// Speaker plays spoken prompts for review sessions
type Speaker struct {
	enabled bool
	lang    string
	current *exec.Cmd
	warned  bool
}

// NewSpeaker creates a speaker for the given language code ("en", "de").
// When enabled is false every call is a no-op.
func NewSpeaker(enabled bool, lang string) *Speaker {
	return &Speaker{enabled: enabled, lang: lang}
}

// Enabled reports whether spoken prompts are active
func (s *Speaker) Enabled() bool {
	return s.enabled
}

// Speak starts speaking and returns immediately, so the user can begin
// typing while the prompt plays. Any previous utterance is stopped first
// so prompts never overlap.
func (s *Speaker) Speak(parts ...string) {
	if !s.enabled {
		return
	}
	text := joinParts(parts)
	if text == "" {
		return
	}

	s.Stop()

	cmd := s.spawn(text)
	if cmd == nil {
		s.warnOnce("no TTS engine found; prompts will be text only (try: apt-get install espeak-ng)")
		return
	}
	s.current = cmd
}

// SpeakAndWait speaks and blocks until the utterance finishes or the
// speak timeout elapses
func (s *Speaker) SpeakAndWait(parts ...string) {
	s.Speak(parts...)
	cmd := s.current
	if cmd == nil {
		return
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(speakTimeout):
		s.Stop()
		<-done
	}
	s.current = nil
}

// Stop kills any utterance still playing
func (s *Speaker) Stop() {
	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
	}
	s.current = nil
}

func (s *Speaker) spawn(text string) *exec.Cmd {
	for _, engine := range engines {
		path, err := exec.LookPath(engine.name)
		if err != nil {
			continue
		}
		cmd := exec.Command(path, engine.args(s.lang, text)...)
		if err := cmd.Start(); err != nil {
			log.Printf("Warning: failed to start %s: %v", engine.name, err)
			continue
		}
		return cmd
	}
	return nil
}

func (s *Speaker) warnOnce(msg string) {
	if s.warned {
		return
	}
	s.warned = true
	log.Printf("Warning: %s", msg)
}

func joinParts(parts []string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ". ")
}
