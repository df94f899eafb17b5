package filesystem

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	sent "github.com/revelaction/lexhit/sentence"
	"github.com/revelaction/lexhit/storage"
)

// CorpusStore reads the annotator tables from CSV files with a header row.
// Columns are looked up by name, extra columns are ignored.
//
//	sentences: sentence_id, sentence_text
//	tokens:    sentence_id, token, lemma, pos [, token_i, tag, dep]
type CorpusStore struct {
	sentencesPath string
	tokensPath    string
}

var _ storage.CorpusReader = (*CorpusStore)(nil)

func NewCorpusStore(sentencesPath, tokensPath string) *CorpusStore {
	return &CorpusStore{sentencesPath: sentencesPath, tokensPath: tokensPath}
}

// ReadCorpus reads both tables concurrently. A missing table is an
// ErrMissingInput error and nothing is returned.
func (cs *CorpusStore) ReadCorpus(ctx context.Context) (sent.Corpus, error) {
	var corpus sent.Corpus

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := ReadSentences(ctx, cs.sentencesPath)
		corpus.Sentences = s
		return err
	})
	g.Go(func() error {
		t, err := ReadTokens(ctx, cs.tokensPath)
		corpus.Tokens = t
		return err
	})

	if err := g.Wait(); err != nil {
		return sent.Corpus{}, err
	}

	return corpus, nil
}

// ReadSentences reads the sentence table at path.
func ReadSentences(ctx context.Context, path string) ([]sent.Sentence, error) {
	var sentences []sent.Sentence
	err := readTable(ctx, path, []string{"sentence_id", "sentence_text"}, func(row record) error {
		id, err := row.sentenceId()
		if err != nil {
			return err
		}
		sentences = append(sentences, sent.Sentence{Id: id, Text: row.get("sentence_text")})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sentences, nil
}

// ReadTokens reads the token table at path.
func ReadTokens(ctx context.Context, path string) ([]sent.Token, error) {
	var tokens []sent.Token
	err := readTable(ctx, path, []string{"sentence_id", "token", "lemma", "pos"}, func(row record) error {
		id, err := row.sentenceId()
		if err != nil {
			return err
		}

		t := sent.Token{
			SentenceId: id,
			Text:       row.get("token"),
			Lemma:      row.get("lemma"),
			Pos:        row.get("pos"),
			Tag:        row.get("tag"),
			Dep:        row.get("dep"),
		}

		if idx := row.get("token_i"); idx != "" {
			t.Index, err = strconv.Atoi(idx)
			if err != nil {
				return fmt.Errorf("invalid token_i %q: %w", idx, err)
			}
		}

		tokens = append(tokens, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

type record struct {
	header map[string]int
	fields []string
}

func (r record) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r record) sentenceId() (int, error) {
	raw := r.get("sentence_id")
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sentence_id %q: %w", raw, err)
	}

	if v < 0 {
		return 0, fmt.Errorf("negative sentence_id %d", v)
	}

	id, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("sentence_id %d: %w", v, err)
	}

	return id, nil
}

func readTable(ctx context.Context, path string, required []string, fn func(record) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", storage.ErrMissingInput, path)
		}
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	head, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: empty table without header", path)
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	header := make(map[string]int, len(head))
	for i, col := range head {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		header[col] = i
	}

	for _, col := range required {
		if _, ok := header[col]; !ok {
			return fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	row := 1
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		row++

		if row%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := fn(record{header: header, fields: fields}); err != nil {
			return fmt.Errorf("%s row %d: %w", path, row, err)
		}
	}
}
