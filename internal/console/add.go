package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"spelldrill/internal/i18n"
	"spelldrill/internal/repository"
	"spelldrill/internal/service"
)

// exitSentinel ends the add loop. Deliberately an unlikely word, so "quit"
// itself can still be added as a spelling word.
const exitSentinel = "exitnow"

// AddLoop interactively reads word/phrase pairs and saves after every add,
// so a closed terminal never loses an entry. Adding an existing word only
// updates its phrase; review progress is kept.
func AddLoop(in io.Reader, out io.Writer, tr *i18n.Translator, repo *repository.WordRepository) error {
	records, err := repo.Load()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, tr.T("ADD_MODE_TITLE"))
	fmt.Fprintln(out)

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, tr.T("WORD_PROMPT")+" ")
		word, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(out, tr.T("LEAVING_ADD"))
			return nil
		}
		if word == "" {
			continue
		}
		if strings.EqualFold(word, exitSentinel) {
			fmt.Fprintln(out, tr.T("LEAVING_ADD"))
			return nil
		}

		fmt.Fprint(out, tr.T("PHRASE_PROMPT")+" ")
		phrase, err := readLine(reader)
		if err != nil {
			phrase = ""
		}

		records, _, err = service.AddWord(records, word, phrase)
		if err != nil {
			fmt.Fprintln(out, errorColor.Sprint(err))
			continue
		}
		if err := repo.Save(records); err != nil {
			return err
		}
		fmt.Fprintln(out, tr.T("SAVED", word))
		fmt.Fprintln(out)
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}
