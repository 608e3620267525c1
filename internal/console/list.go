package console

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"spelldrill/internal/i18n"
	"spelldrill/internal/models"
	"spelldrill/internal/service"
)

// RenderList prints the in-progress words (words reviewed today sort last,
// flagged as such) followed by the mastered words.
func RenderList(out io.Writer, tr *i18n.Translator, records []models.WordRecord, today time.Time) {
	var inProgress, mastered []models.WordRecord
	for _, rec := range records {
		if rec.Mastered {
			mastered = append(mastered, rec)
		} else {
			inProgress = append(inProgress, rec)
		}
	}

	sort.SliceStable(inProgress, func(i, j int) bool {
		a, b := inProgress[i], inProgress[j]
		if a.ReviewedOn(today) != b.ReviewedOn(today) {
			return !a.ReviewedOn(today)
		}
		return strings.ToLower(a.Word) < strings.ToLower(b.Word)
	})
	sort.SliceStable(mastered, func(i, j int) bool {
		return strings.ToLower(mastered[i].Word) < strings.ToLower(mastered[j].Word)
	})

	fmt.Fprintln(out, tr.T("TODAY", today.Format(models.DateFormat)))
	fmt.Fprintln(out)

	fmt.Fprintln(out, tr.T("DUE_TITLE"))
	if len(inProgress) == 0 {
		fmt.Fprintln(out, "  "+tr.T("NONE"))
	}
	for _, rec := range inProgress {
		flag := " "
		if rec.ReviewedOn(today) {
			flag = tr.T("TODAY_FLAG")
		}
		fmt.Fprintf(out, "  [%-6s] %-20s  %s  %s\n",
			flag, rec.Word,
			tr.T("STREAK", rec.Streak, service.MasteryStreak),
			tr.T("LAST", lastReview(rec)))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tr.T("MASTERED_TITLE"))
	if len(mastered) == 0 {
		fmt.Fprintln(out, "  "+tr.T("NONE"))
	}
	for _, rec := range mastered {
		fmt.Fprintf(out, "  %-20s  %s  %s\n",
			rec.Word,
			tr.T("STREAK", rec.Streak, service.MasteryStreak),
			tr.T("LAST", lastReview(rec)))
	}
}

func lastReview(rec models.WordRecord) string {
	if rec.NeverReviewed() {
		return "-"
	}
	return rec.LastReviewed.Format(models.DateFormat)
}
