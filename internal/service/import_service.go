package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"spelldrill/internal/repository"
)

// ImportResult holds the outcome of a bulk import
type ImportResult struct {
	Processed int
	Created   int
	Updated   int
	Skipped   int
	Errors    []string
}

// ImportService loads word/phrase pairs in bulk from spreadsheet or CSV
// files into a user's store. Column A (or 1) is the word, column B the
// example phrase. Existing records only get their phrase updated; streaks
// and mastery are never reset by an import.
type ImportService struct {
	repo *repository.WordRepository
}

// NewImportService creates a new import service
func NewImportService(repo *repository.WordRepository) *ImportService {
	return &ImportService{repo: repo}
}

// ImportFile imports words from an .xlsx or .csv file. The sheet name is
// only used for spreadsheets; pass "" for the default sheet.
func (s *ImportService) ImportFile(path, sheet string) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	default:
		rows, err = readSheetRows(path, sheet)
	}
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		word := strings.TrimSpace(row[0])
		if word == "" || (i == 0 && strings.EqualFold(word, "word")) {
			result.Skipped++
			continue
		}
		phrase := ""
		if len(row) > 1 {
			phrase = strings.TrimSpace(row[1])
		}

		result.Processed++
		updated, created, err := AddWord(records, word, phrase)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		records = updated
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	if err := s.repo.Save(records); err != nil {
		return result, err
	}
	return result, nil
}

func readSheetRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
