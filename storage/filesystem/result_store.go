package filesystem

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/revelaction/lexhit/detect"
	"github.com/revelaction/lexhit/file"
	"github.com/revelaction/lexhit/freq"
	"github.com/revelaction/lexhit/storage"
)

const (
	SentenceHitsFile     = "sentence_hits.csv"
	TokenHitsFile        = "token_hits.csv"
	LemmaFrequenciesFile = "lemma_frequencies.csv"

	// lexiconSeparator joins the matched lexicon names of a token hit.
	lexiconSeparator = "|"
)

// ResultStore writes the aggregates of a run as CSV files in a directory.
type ResultStore struct {
	dir string
}

var _ storage.ResultWriter = (*ResultStore)(nil)

func NewResultStore(dir string) *ResultStore {
	return &ResultStore{dir: dir}
}

// WriteResult writes the sentence table, the token hits and the lemma
// frequencies (top lemmas per table, all if top <= 0). The files are
// written to temporary files first and renamed only when all of them are
// complete, so a failed write leaves the previous tables in place.
func (rs *ResultStore) WriteResult(res detect.Result, top int) (err error) {
	if err := os.MkdirAll(rs.dir, 0755); err != nil {
		return fmt.Errorf("failed to create result directory: %w", err)
	}

	files := []struct {
		name string
		rows [][]string
	}{
		{SentenceHitsFile, SentenceRows(res)},
		{TokenHitsFile, TokenRows(res)},
		{LemmaFrequenciesFile, FrequencyRows(res.Frequencies, top)},
	}

	pending := make([]*file.Pending, 0, len(files))
	defer func() {
		if err != nil {
			for _, p := range pending {
				p.Discard()
			}
		}
	}()

	for _, f := range files {
		p, werr := writeCSV(filepath.Join(rs.dir, f.name), f.rows)
		if werr != nil {
			return werr
		}
		pending = append(pending, p)
	}

	for _, p := range pending {
		if err = p.Check(); err != nil {
			return err
		}
	}

	for _, p := range pending {
		if err = p.Commit(); err != nil {
			return err
		}
	}

	return nil
}

// SentenceRows returns the sentence table with its header. The count and
// lemma columns are repeated for each active lexicon.
func SentenceRows(res detect.Result) [][]string {
	header := []string{"sentence_id", "sentence_text"}
	for _, name := range res.Lexicons {
		header = append(header, name+"_hit_count")
	}
	for _, name := range res.Lexicons {
		header = append(header, name+"_lemmas")
	}
	header = append(header, "any_hit")

	rows := [][]string{header}
	for _, s := range res.Sentences.Rows {
		row := []string{strconv.Itoa(s.Id), s.Text}
		for i := range res.Lexicons {
			row = append(row, strconv.Itoa(s.Count(i)))
		}
		for i := range res.Lexicons {
			row = append(row, strings.Join(s.Hits[i].Lemmas, " "))
		}
		row = append(row, boolInt(s.AnyHit))
		rows = append(rows, row)
	}

	return rows
}

// TokenRows returns the token hits table with its header.
func TokenRows(res detect.Result) [][]string {
	rows := [][]string{{"sentence_id", "token", "lemma", "pos", "category", "hit_type", "lexicons"}}
	for _, cl := range res.Tokens {
		rows = append(rows, []string{
			strconv.Itoa(cl.Token.SentenceId),
			cl.Token.Text,
			cl.Lemma,
			cl.Token.Pos,
			cl.Category.String(),
			cl.Label,
			strings.Join(cl.Lexicons, lexiconSeparator),
		})
	}

	return rows
}

// FrequencyRows returns the lemma frequencies, first by combined label, then
// by lexicon.
func FrequencyRows(t *freq.Table, top int) [][]string {
	rows := [][]string{{"kind", "name", "rank", "lemma", "count"}}
	if t == nil {
		return rows
	}

	for _, label := range t.Labels() {
		for i, e := range t.Top(label, top) {
			rows = append(rows, []string{"label", label, strconv.Itoa(i + 1), e.Lemma, strconv.Itoa(e.Count)})
		}
	}

	for _, name := range t.Lexicons() {
		for i, e := range t.TopLexicon(name, top) {
			rows = append(rows, []string{"lexicon", name, strconv.Itoa(i + 1), e.Lemma, strconv.Itoa(e.Count)})
		}
	}

	return rows
}

func writeCSV(path string, rows [][]string) (*file.Pending, error) {
	p, err := file.CreatePending(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(p)
	if err := w.WriteAll(rows); err != nil {
		p.Discard()
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := p.Finish(); err != nil {
		p.Discard()
		return nil, err
	}

	return p, nil
}

func boolInt(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
