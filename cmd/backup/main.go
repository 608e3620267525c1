package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"spelldrill/internal/config"
	"spelldrill/internal/service"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	exportDataDir := exportCmd.String("data-dir", "", "Directory holding the per-user word files")

	importInput := importCmd.String("input", "", "Input file path (required)")
	importDataDir := importCmd.String("data-dir", "", "Directory holding the per-user word files")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		if *exportDataDir != "" {
			cfg.DataDir = *exportDataDir
		}
		handleExport(service.NewBackupService(cfg.DataDir), *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importDataDir != "" {
			cfg.DataDir = *importDataDir
		}
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(service.NewBackupService(cfg.DataDir), *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	log.Printf("Exporting word stores to: %s", outputPath)
	if err := backupService.Export(outputPath); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fileInfo, _ := os.Stat(outputPath)
	log.Printf("Export complete! File size: %.1f KB", float64(fileInfo.Size())/1024)
}

func handleImport(backupService *service.BackupService, inputPath string) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input file does not exist: %s", inputPath)
	}

	log.Printf("Importing word stores from: %s", inputPath)
	if err := backupService.Import(inputPath); err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Println("Import complete!")
}

func printUsage() {
	fmt.Println("spelldrill Word Store Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export all user word files to a JSON snapshot")
	fmt.Println("  backup import [options]    Merge a JSON snapshot back into the data directory")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>     Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println("  -data-dir <dir>    Data directory (default: ./data or SPELL_DATA_DIR)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>      Input file path (required)")
	fmt.Println("  -data-dir <dir>    Data directory (default: ./data or SPELL_DATA_DIR)")
	fmt.Println()
	fmt.Println("Import merges: for a word present in both the snapshot and the store,")
	fmt.Println("the record with the higher streak is kept.")
}
