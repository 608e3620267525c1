package service

import (
	"fmt"
	"strings"

	"spelldrill/internal/models"
	"spelldrill/internal/repository"
)

// AddWord creates a record for the word or, when it already exists, updates
// only its phrase. Review progress is deliberately untouched: editing the
// example phrase of a mastered word must not un-master it.
// Returns the updated set and whether a new record was created.
func AddWord(records []models.WordRecord, word, phrase string) ([]models.WordRecord, bool, error) {
	word = strings.TrimSpace(word)
	phrase = strings.TrimSpace(phrase)
	if word == "" {
		return records, false, fmt.Errorf("word must not be empty")
	}

	if existing := repository.Find(records, word); existing != nil {
		existing.Phrase = phrase
		return records, false, nil
	}

	rec := models.WordRecord{Word: word, Phrase: phrase}
	return append(records, rec), true, nil
}
