package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"spelldrill/internal/models"
)

// Column order of the per-user store file. Rows may carry extra trailing
// columns; those are preserved verbatim on save.
var storeHeader = []string{"word", "phrase", "streak", "last_reviewed", "mastered"}

const storeColumns = 5

// CorruptRowError describes a malformed row in a store file. Such rows are
// skipped with a warning rather than aborting the whole load, so a single
// bad row never locks a user out of the rest of their words.
type CorruptRowError struct {
	Line   int
	Reason string
}

func (e CorruptRowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// WordRepository handles persistence of word records in a per-user CSV file
type WordRepository struct {
	path string
}

// NewWordRepository creates a repository backed by the given file path
func NewWordRepository(path string) *WordRepository {
	return &WordRepository{path: path}
}

// Path returns the store file path
func (r *WordRepository) Path() string {
	return r.path
}

// Load reads all word records in file order. A missing file is a first run,
// not an error: it yields an empty set. Malformed rows are skipped with a
// warning (skip-and-warn policy).
func (r *WordRepository) Load() ([]models.WordRecord, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var records []models.WordRecord
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("Warning: skipping corrupt row in %s: %v", r.path, err)
			continue
		}
		if line == 1 && isHeaderRow(row) {
			continue
		}

		rec, perr := parseRow(row, line)
		if perr != nil {
			log.Printf("Warning: skipping corrupt row in %s: %v", r.path, perr)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// Save writes the full ordered record set, replacing the file atomically
// (write to a temp file in the same directory, then rename) so a crash
// mid-write never corrupts existing progress.
func (r *WordRepository) Save(records []models.WordRecord) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	werr := writer.Write(storeHeader)
	for _, rec := range records {
		if werr != nil {
			break
		}
		werr = writer.Write(formatRow(rec))
	}
	if werr == nil {
		writer.Flush()
		werr = writer.Error()
	}
	if werr == nil {
		werr = tmp.Sync()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", werr)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

// UpsertAndSave replaces the record matching rec.Word (appending when absent)
// and saves the whole set. Returns the updated slice so the caller keeps an
// in-memory copy consistent with the file even when the save fails.
func (r *WordRepository) UpsertAndSave(records []models.WordRecord, rec models.WordRecord) ([]models.WordRecord, error) {
	records = Upsert(records, rec)
	return records, r.Save(records)
}

// Upsert replaces the record with the same word, or appends a new one.
// Match is by exact word text.
func Upsert(records []models.WordRecord, rec models.WordRecord) []models.WordRecord {
	for i := range records {
		if records[i].Word == rec.Word {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}

// Find returns the record with the given word, or nil
func Find(records []models.WordRecord, word string) *models.WordRecord {
	for i := range records {
		if records[i].Word == word {
			return &records[i]
		}
	}
	return nil
}

func isHeaderRow(row []string) bool {
	if len(row) < 3 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(row[0]), storeHeader[0]) &&
		strings.EqualFold(strings.TrimSpace(row[2]), storeHeader[2])
}

func parseRow(row []string, line int) (models.WordRecord, error) {
	var rec models.WordRecord

	if len(row) < storeColumns {
		return rec, CorruptRowError{Line: line, Reason: fmt.Sprintf("expected at least %d columns, got %d", storeColumns, len(row))}
	}

	word := strings.TrimSpace(row[0])
	if word == "" {
		return rec, CorruptRowError{Line: line, Reason: "empty word"}
	}

	streak, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil || streak < 0 {
		return rec, CorruptRowError{Line: line, Reason: fmt.Sprintf("invalid streak %q", row[2])}
	}

	var lastReviewed time.Time
	if raw := strings.TrimSpace(row[3]); raw != "" {
		lastReviewed, err = time.Parse(models.DateFormat, raw)
		if err != nil {
			return rec, CorruptRowError{Line: line, Reason: fmt.Sprintf("invalid date %q", row[3])}
		}
	}

	mastered, err := strconv.ParseBool(strings.TrimSpace(row[4]))
	if err != nil {
		return rec, CorruptRowError{Line: line, Reason: fmt.Sprintf("invalid mastered flag %q", row[4])}
	}

	rec = models.WordRecord{
		Word:         word,
		Phrase:       row[1],
		Streak:       streak,
		LastReviewed: lastReviewed,
		Mastered:     mastered,
	}
	if len(row) > storeColumns {
		rec.Extra = append([]string(nil), row[storeColumns:]...)
	}
	return rec, nil
}

func formatRow(rec models.WordRecord) []string {
	last := ""
	if !rec.LastReviewed.IsZero() {
		last = rec.LastReviewed.Format(models.DateFormat)
	}
	row := []string{
		rec.Word,
		rec.Phrase,
		strconv.Itoa(rec.Streak),
		last,
		strconv.FormatBool(rec.Mastered),
	}
	return append(row, rec.Extra...)
}
