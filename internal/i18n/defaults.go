package i18n

// defaults holds the built-in English and German UI strings. Keys mirror the
// locales.csv format, so a file override can replace any of them.
var defaults = map[string]map[string]string{
	"WELCOME": {
		"en": "Hello %s.",
		"de": "Hallo %s.",
	},
	"LETSGO": {
		"en": "Let's practice spelling!",
		"de": "Lass uns Rechtschreibung üben!",
	},
	"TODAY": {
		"en": "Today: %s",
		"de": "Heute: %s",
	},
	"USER": {
		"en": "User: %s",
		"de": "Benutzer: %s",
	},
	"DATA_FILE": {
		"en": "Data file: %s",
		"de": "Datendatei: %s",
	},
	"ADD_MODE_TITLE": {
		"en": "Add words (type exitnow to stop)",
		"de": "Wörter hinzufügen (exitnow eingeben zum Beenden)",
	},
	"WORD_PROMPT": {
		"en": "Word:",
		"de": "Wort:",
	},
	"PHRASE_PROMPT": {
		"en": "Example phrase:",
		"de": "Beispielsatz:",
	},
	"LEAVING_ADD": {
		"en": "Leaving add mode.",
		"de": "Hinzufügen beendet.",
	},
	"SAVED": {
		"en": "Saved: %s",
		"de": "Gespeichert: %s",
	},
	"DUE_TITLE": {
		"en": "In progress:",
		"de": "In Arbeit:",
	},
	"MASTERED_TITLE": {
		"en": "Mastered:",
		"de": "Gemeistert:",
	},
	"NONE": {
		"en": "(none)",
		"de": "(keine)",
	},
	"TODAY_FLAG": {
		"en": "today",
		"de": "heute",
	},
	"STREAK": {
		"en": "streak %d/%d",
		"de": "Serie %d/%d",
	},
	"LAST": {
		"en": "last: %s",
		"de": "zuletzt: %s",
	},
	"NO_WORDS_DUE": {
		"en": "No words due. Add some words first.",
		"de": "Keine Wörter fällig. Füge zuerst Wörter hinzu.",
	},
	"ALL_DONE_TODAY": {
		"en": "All words are done for today. Come back tomorrow!",
		"de": "Alle Wörter für heute geschafft. Bis morgen!",
	},
	"ALREADY_REVIEWED_TODAY": {
		"en": "Already practiced today: %d",
		"de": "Heute schon geübt: %d",
	},
	"REVIEW_START": {
		"en": "%d words to practice. %d correct days in a row master a word.",
		"de": "%d Wörter zu üben. %d richtige Tage in Folge meistern ein Wort.",
	},
	"PROGRESS": {
		"en": "Word %d of %d (streak %d/%d)",
		"de": "Wort %d von %d (Serie %d/%d)",
	},
	"NO_PHRASE": {
		"en": "(no example phrase)",
		"de": "(kein Beispielsatz)",
	},
	"TYPE_WORD": {
		"en": "Type the word:",
		"de": "Schreibe das Wort:",
	},
	"CONTROLS_HINT": {
		"en": "(replay = hear again, quit = stop)",
		"de": "(replay = nochmal hören, quit = aufhören)",
	},
	"SAY_SPELL_NOW": {
		"en": "Now spell",
		"de": "Buchstabiere jetzt",
	},
	"SAY_NEXT_WORD": {
		"en": "Next word",
		"de": "Nächstes Wort",
	},
	"CORRECT": {
		"en": "Correct!",
		"de": "Richtig!",
	},
	"CORRECT_STREAK": {
		"en": "Correct! Streak: %d/%d",
		"de": "Richtig! Serie: %d/%d",
	},
	"MASTERED_NOW": {
		"en": "Mastered! %d in a row. This word is done.",
		"de": "Gemeistert! %d in Folge. Dieses Wort ist geschafft.",
	},
	"WRONG": {
		"en": "Not quite.",
		"de": "Leider falsch.",
	},
	"EXPECTED": {
		"en": "The word was: %s",
		"de": "Das Wort war: %s",
	},
	"RESET_STREAK": {
		"en": "Streak reset. %d in a row master the word.",
		"de": "Serie zurückgesetzt. %d in Folge meistern das Wort.",
	},
	"DONE": {
		"en": "Done for today!",
		"de": "Fertig für heute!",
	},
	"QUIT": {
		"en": "Session ended. Your progress is saved.",
		"de": "Sitzung beendet. Dein Fortschritt ist gespeichert.",
	},
	"SAVE_FAILED": {
		"en": "Could not save progress for %s: %v",
		"de": "Fortschritt für %s konnte nicht gespeichert werden: %v",
	},
	"TTS_SETUP_INSTRUCTIONS": {
		"en": "To install text-to-speech on Ubuntu/Debian run:",
		"de": "Zum Installieren der Sprachausgabe unter Ubuntu/Debian:",
	},
	"TTS_SETUP_INSTALLING": {
		"en": "Installing text-to-speech engine...",
		"de": "Sprachausgabe wird installiert...",
	},
}
