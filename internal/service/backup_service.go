package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spelldrill/internal/models"
	"spelldrill/internal/repository"
)

// BackupData represents a complete snapshot of every user store
type BackupData struct {
	Version    string       `json:"version"`
	ExportedAt time.Time    `json:"exported_at"`
	Users      []UserBackup `json:"users"`
}

// UserBackup holds one user's word records
type UserBackup struct {
	User  string       `json:"user"`
	Words []WordBackup `json:"words"`
}

// WordBackup represents a word record for backup
type WordBackup struct {
	Word         string `json:"word"`
	Phrase       string `json:"phrase"`
	Streak       int    `json:"streak"`
	LastReviewed string `json:"last_reviewed,omitempty"`
	Mastered     bool   `json:"mastered"`
}

// BackupService exports and restores the per-user CSV stores of a data
// directory as a single JSON snapshot
type BackupService struct {
	dataDir string
}

// NewBackupService creates a new backup service
func NewBackupService(dataDir string) *BackupService {
	return &BackupService{dataDir: dataDir}
}

// Export writes a snapshot of every user store in the data directory
func (s *BackupService) Export(outputPath string) error {
	paths, err := filepath.Glob(filepath.Join(s.dataDir, "*.csv"))
	if err != nil {
		return fmt.Errorf("failed to scan data directory: %w", err)
	}

	backup := BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	for _, path := range paths {
		user := strings.TrimSuffix(filepath.Base(path), ".csv")
		records, err := repository.NewWordRepository(path).Load()
		if err != nil {
			return fmt.Errorf("failed to load store for %s: %w", user, err)
		}

		ub := UserBackup{User: user}
		for _, rec := range records {
			ub.Words = append(ub.Words, toBackup(rec))
		}
		backup.Users = append(backup.Users, ub)
		log.Printf("Exported %d words for user %s", len(ub.Words), user)
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// Import merges a snapshot back into the data directory. For a word present
// on both sides the higher streak wins, so a restore never loses progress.
func (s *BackupService) Import(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	for _, ub := range backup.Users {
		repo := repository.NewWordRepository(filepath.Join(s.dataDir, ub.User+".csv"))
		records, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load store for %s: %w", ub.User, err)
		}

		merged := 0
		for _, wb := range ub.Words {
			rec, err := fromBackup(wb)
			if err != nil {
				log.Printf("Warning: skipping word %q for user %s: %v", wb.Word, ub.User, err)
				continue
			}
			if existing := repository.Find(records, rec.Word); existing != nil && existing.Streak >= rec.Streak {
				continue
			}
			records = repository.Upsert(records, rec)
			merged++
		}

		if err := repo.Save(records); err != nil {
			return fmt.Errorf("failed to save store for %s: %w", ub.User, err)
		}
		log.Printf("Merged %d words for user %s", merged, ub.User)
	}
	return nil
}

func toBackup(rec models.WordRecord) WordBackup {
	wb := WordBackup{
		Word:     rec.Word,
		Phrase:   rec.Phrase,
		Streak:   rec.Streak,
		Mastered: rec.Mastered,
	}
	if !rec.LastReviewed.IsZero() {
		wb.LastReviewed = rec.LastReviewed.Format(models.DateFormat)
	}
	return wb
}

func fromBackup(wb WordBackup) (models.WordRecord, error) {
	rec := models.WordRecord{
		Word:     strings.TrimSpace(wb.Word),
		Phrase:   wb.Phrase,
		Streak:   wb.Streak,
		Mastered: wb.Mastered,
	}
	if wb.LastReviewed != "" {
		t, err := time.Parse(models.DateFormat, wb.LastReviewed)
		if err != nil {
			return rec, fmt.Errorf("invalid date %q", wb.LastReviewed)
		}
		rec.LastReviewed = t
	}
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}
