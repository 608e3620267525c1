package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"spelldrill/internal/audio"
	"spelldrill/internal/config"
	"spelldrill/internal/console"
	"spelldrill/internal/i18n"
	"spelldrill/internal/repository"
	"spelldrill/internal/service"
	"spelldrill/internal/utils"
)

const installCommand = "apt-get update && apt-get install -y espeak-ng"

// commonFlags are shared by every subcommand and override the environment
// configuration when set
type commonFlags struct {
	user    *string
	lang    *string
	speak   *bool
	dataDir *string
	file    *string
	locales *string
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		user:    fs.String("user", "", "Profile name selecting the per-user word file"),
		lang:    fs.String("language", "", "UI language tag (en or de)"),
		speak:   fs.Bool("speak", false, "Read prompts aloud (TTS)"),
		dataDir: fs.String("data-dir", "", "Directory for per-user word files"),
		file:    fs.String("file", "", "Word file path override (bypasses -user/-data-dir)"),
		locales: fs.String("locales", "", "Translation CSV file (Key,English,German)"),
	}
}

func (f *commonFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "user":
			cfg.User = *f.user
		case "language":
			cfg.Language = *f.lang
		case "speak":
			cfg.Speak = *f.speak
		case "data-dir":
			cfg.DataDir = *f.dataDir
		case "file":
			cfg.StoreFile = *f.file
		case "locales":
			cfg.LocalesPath = *f.locales
		}
	})
}

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	reviewCmd := flag.NewFlagSet("review", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	setupCmd := flag.NewFlagSet("setup-tts", flag.ExitOnError)

	addCommon := registerCommon(addCmd)
	reviewCommon := registerCommon(reviewCmd)
	listCommon := registerCommon(listCmd)
	importCommon := registerCommon(importCmd)
	setupCommon := registerCommon(setupCmd)

	reviewLimit := reviewCmd.Int("limit", 0, "Review at most N words (0 = all due)")
	reviewShuffle := reviewCmd.Bool("shuffle", false, "Randomize the review order")

	importInput := importCmd.String("input", "", "Input .xlsx or .csv file (required)")
	importSheet := importCmd.String("sheet", "", "Sheet name for spreadsheets (default: first sheet)")

	setupInstall := setupCmd.Bool("install", false, "Actually run apt-get install (uses root)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		addCommon.apply(addCmd, cfg)
		app := newApp(cfg)
		if err := console.AddLoop(os.Stdin, os.Stdout, app.tr, app.repo); err != nil {
			log.Fatalf("Add failed: %v", err)
		}
		fmt.Println(app.tr.T("DATA_FILE", app.repo.Path()))

	case "review":
		reviewCmd.Parse(os.Args[2:])
		reviewCommon.apply(reviewCmd, cfg)
		app := newApp(cfg)
		app.runReview(*reviewLimit, *reviewShuffle)

	case "list":
		listCmd.Parse(os.Args[2:])
		listCommon.apply(listCmd, cfg)
		app := newApp(cfg)
		records, err := app.repo.Load()
		if err != nil {
			log.Fatalf("Failed to load words: %v", err)
		}
		fmt.Println(app.tr.T("USER", displayUser(cfg)))
		fmt.Println(app.tr.T("DATA_FILE", app.repo.Path()))
		fmt.Println()
		console.RenderList(os.Stdout, app.tr, records, time.Now())

	case "import":
		importCmd.Parse(os.Args[2:])
		importCommon.apply(importCmd, cfg)
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		app := newApp(cfg)
		result, err := service.NewImportService(app.repo).ImportFile(*importInput, *importSheet)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("Import complete: %d processed, %d created, %d updated, %d skipped",
			result.Processed, result.Created, result.Updated, result.Skipped)
		for _, msg := range result.Errors {
			log.Printf("Warning: %s", msg)
		}

	case "setup-tts":
		setupCmd.Parse(os.Args[2:])
		setupCommon.apply(setupCmd, cfg)
		app := newApp(cfg)
		runSetupTTS(app.tr, *setupInstall)

	default:
		printUsage()
		os.Exit(1)
	}
}

// app bundles the collaborators every subcommand needs
type app struct {
	cfg     *config.Config
	tr      *i18n.Translator
	speaker *audio.Speaker
	repo    *repository.WordRepository
}

func newApp(cfg *config.Config) *app {
	tr, err := i18n.New(cfg.Language, cfg.LocalesPath)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	path := utils.ResolveStorePath(cfg.User, cfg.StoreFile, cfg.DataDir)
	return &app{
		cfg:     cfg,
		tr:      tr,
		speaker: audio.NewSpeaker(cfg.Speak, tr.Language()),
		repo:    repository.NewWordRepository(path),
	}
}

func (a *app) runReview(limit int, shuffle bool) {
	records, err := a.repo.Load()
	if err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}

	today := time.Now()
	due := service.DueRecords(records, today)
	reviewedToday := service.ReviewedTodayCount(records, today)

	if len(due) == 0 {
		if reviewedToday > 0 {
			fmt.Println(a.tr.T("ALL_DONE_TODAY"))
		} else {
			fmt.Println(a.tr.T("NO_WORDS_DUE"))
		}
		return
	}

	if a.speaker.Enabled() && a.cfg.User != "" {
		a.speaker.SpeakAndWait(a.tr.T("WELCOME", a.cfg.User), a.tr.T("LETSGO"))
	}

	// The session header stays silent in speech mode so nothing on screen
	// gives the spelling away.
	if !a.speaker.Enabled() {
		fmt.Println(a.tr.T("USER", displayUser(a.cfg)))
		fmt.Println(a.tr.T("TODAY", today.Format("2006-01-02")))
		if reviewedToday > 0 {
			fmt.Println(a.tr.T("ALREADY_REVIEWED_TODAY", reviewedToday))
		}
		count := len(due)
		if limit > 0 && limit < count {
			count = limit
		}
		fmt.Println(a.tr.T("REVIEW_START", count, service.MasteryStreak))
		fmt.Println()
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout, a.tr, a.speaker)
	feedback := console.NewFeedback(os.Stdout, a.tr, a.speaker)
	driver := service.NewSessionDriver(a.repo, prompter, feedback)

	result, _, err := driver.Run(records, today, service.SessionOptions{Limit: limit, Shuffle: shuffle})
	a.speaker.Stop()
	if err != nil {
		log.Fatalf("Review session failed: %v", err)
	}

	fmt.Println()
	if result.Quit {
		fmt.Println(a.tr.T("QUIT"))
	} else {
		fmt.Println(a.tr.T("DONE"))
	}
}

func runSetupTTS(tr *i18n.Translator, install bool) {
	if !install {
		fmt.Println(tr.T("TTS_SETUP_INSTRUCTIONS"))
		fmt.Println("  " + installCommand)
		return
	}

	fmt.Println(tr.T("TTS_SETUP_INSTALLING"))
	cmd := exec.Command("sh", "-c", installCommand)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Printf("Warning: install command failed: %v", err)
	}
}

func displayUser(cfg *config.Config) string {
	if cfg.User != "" {
		return cfg.User
	}
	return "(file override)"
}

func printUsage() {
	fmt.Println("spelldrill - offline spelling trainer")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  spelldrill add [options]        Add words interactively (type exitnow to stop)")
	fmt.Println("  spelldrill review [options]     Run a review session")
	fmt.Println("  spelldrill list [options]       Show in-progress and mastered words")
	fmt.Println("  spelldrill import [options]     Bulk-add words from an .xlsx or .csv file")
	fmt.Println("  spelldrill setup-tts [options]  Help install a TTS engine (Ubuntu/Debian)")
	fmt.Println()
	fmt.Println("Common Options:")
	fmt.Println("  -user <name>       Profile name (e.g. daughter, son)")
	fmt.Println("  -language <tag>    UI language: en or de (default: en)")
	fmt.Println("  -speak             Read prompts aloud (TTS)")
	fmt.Println("  -data-dir <dir>    Directory for per-user word files (default: ./data)")
	fmt.Println("  -file <path>       Word file override (bypasses -user/-data-dir)")
	fmt.Println()
	fmt.Println("Review Options:")
	fmt.Println("  -limit <n>         Review at most N words today")
	fmt.Println("  -shuffle           Randomize the review order")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>      Input .xlsx or .csv file (required)")
	fmt.Println("  -sheet <name>      Sheet name for spreadsheets")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SPELL_USER, SPELL_LANGUAGE, SPELL_SPEAK, SPELL_DATA_DIR, SPELL_FILE, SPELL_LOCALES")
}
