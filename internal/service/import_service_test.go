package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"spelldrill/internal/models"
	"spelldrill/internal/repository"
)

func TestImportFromCSV(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "words.csv")
	content := "word,phrase\n" +
		"apple,an apple a day\n" +
		"Straße,eine lange Straße\n" +
		",no word here\n" +
		"mango,\n"
	if err := os.WriteFile(input, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	repo := repository.NewWordRepository(filepath.Join(dir, "kid.csv"))
	existing := []models.WordRecord{
		{Word: "apple", Phrase: "old phrase", Streak: 3, LastReviewed: date(2026, 2, 1)},
	}
	if err := repo.Save(existing); err != nil {
		t.Fatal(err)
	}

	result, err := NewImportService(repo).ImportFile(input, "")
	if err != nil {
		t.Fatalf("ImportFile() returned error: %v", err)
	}

	if result.Processed != 3 || result.Created != 2 || result.Updated != 1 {
		t.Errorf("result = %+v, want 3 processed, 2 created, 1 updated", result)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 3 {
		t.Fatalf("store has %d records, want 3", len(loaded))
	}

	apple := repository.Find(loaded, "apple")
	if apple.Phrase != "an apple a day" {
		t.Errorf("apple phrase = %q, want updated phrase", apple.Phrase)
	}
	// Re-importing a word must never reset its progress
	if apple.Streak != 3 || apple.LastReviewed.IsZero() {
		t.Errorf("apple progress reset by import: %+v", apple)
	}
}

func TestImportFromSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "words.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	cells := map[string]string{
		"A1": "word", "B1": "phrase",
		"A2": "banana", "B2": "a yellow banana",
		"A3": "café", "B3": "un café très fort",
	}
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(input); err != nil {
		t.Fatal(err)
	}

	repo := repository.NewWordRepository(filepath.Join(dir, "kid.csv"))
	result, err := NewImportService(repo).ImportFile(input, "")
	if err != nil {
		t.Fatalf("ImportFile() returned error: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("result = %+v, want 2 created", result)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	cafe := repository.Find(loaded, "café")
	if cafe == nil || cafe.Phrase != "un café très fort" {
		t.Errorf("café after spreadsheet import = %+v", cafe)
	}
}

func TestImportMissingFile(t *testing.T) {
	repo := repository.NewWordRepository(filepath.Join(t.TempDir(), "kid.csv"))
	if _, err := NewImportService(repo).ImportFile("does-not-exist.xlsx", ""); err == nil {
		t.Error("ImportFile() on missing input returned nil error")
	}
}
