package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/lexhit/detect"
	"github.com/revelaction/lexhit/storage"
)

// ResultStore writes the aggregates of a run to SQLite. A write replaces
// the previous run.
type ResultStore struct {
	pool *sqlitex.Pool
}

var _ storage.ResultWriter = (*ResultStore)(nil)

func NewResultStore(pool *sqlitex.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

// SentenceCount is a row of the sentence table as stored: the hit count
// per lexicon, in lexicon order.
type SentenceCount struct {
	Id     int
	Counts []int
	AnyHit bool
}

func (h *ResultStore) WriteResult(res detect.Result, top int) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	for _, table := range []string{"lemma_frequencies", "token_hits", "sentence_lexicon_hits", "sentence_hits", "lexicons"} {
		if err = sqlitex.Execute(conn, "DELETE FROM "+table, nil); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, name := range res.Lexicons {
		err = sqlitex.Execute(conn, "INSERT INTO lexicons (position, name) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []any{i, name},
		})
		if err != nil {
			return fmt.Errorf("failed to insert lexicon: %w", err)
		}
	}

	for _, s := range res.Sentences.Rows {
		anyHit := 0
		if s.AnyHit {
			anyHit = 1
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentence_hits (sentence_id, sentence_text, any_hit) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{s.Id, s.Text, anyHit},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence %d: %w", s.Id, err)
		}

		for _, lh := range s.Hits {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lexicon_hits (sentence_id, lexicon, hit_count, lemmas) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
				Args: []any{s.Id, lh.Lexicon, len(lh.Lemmas), strings.Join(lh.Lemmas, " ")},
			})
			if err != nil {
				return fmt.Errorf("failed to insert hits of sentence %d: %w", s.Id, err)
			}
		}
	}

	for i, cl := range res.Tokens {
		err = sqlitex.Execute(conn, `
			INSERT INTO token_hits (id, sentence_id, token, lemma, pos, category, hit_type, lexicons)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, &sqlitex.ExecOptions{
			Args: []any{i, cl.Token.SentenceId, cl.Token.Text, cl.Lemma, cl.Token.Pos, cl.Category.String(), cl.Label, strings.Join(cl.Lexicons, "|")},
		})
		if err != nil {
			return fmt.Errorf("failed to insert token hit: %w", err)
		}
	}

	if res.Frequencies == nil {
		return nil
	}

	insertFreq := func(kind, name string, rank int, lemma string, count int) error {
		return sqlitex.Execute(conn, "INSERT INTO lemma_frequencies (kind, name, rank, lemma, count) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{kind, name, rank, lemma, count},
		})
	}

	for _, label := range res.Frequencies.Labels() {
		for i, e := range res.Frequencies.Top(label, top) {
			if err = insertFreq("label", label, i+1, e.Lemma, e.Count); err != nil {
				return fmt.Errorf("failed to insert frequency: %w", err)
			}
		}
	}

	for _, name := range res.Frequencies.Lexicons() {
		for i, e := range res.Frequencies.TopLexicon(name, top) {
			if err = insertFreq("lexicon", name, i+1, e.Lemma, e.Count); err != nil {
				return fmt.Errorf("failed to insert frequency: %w", err)
			}
		}
	}

	return nil
}

// Lexicons returns the lexicon names of the stored run, in match order.
func (h *ResultStore) Lexicons() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM lexicons ORDER BY position", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// SentenceCounts returns the stored sentence table, ascending by id.
func (h *ResultStore) SentenceCounts() ([]SentenceCount, error) {
	names, err := h.Lexicons()
	if err != nil {
		return nil, err
	}

	position := make(map[string]int, len(names))
	for i, n := range names {
		position[n] = i
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var rows []SentenceCount
	index := map[int]int{}
	err = sqlitex.Execute(conn, "SELECT sentence_id, any_hit FROM sentence_hits ORDER BY sentence_id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id, err := safecast.Conv[int](stmt.ColumnInt64(0))
			if err != nil {
				return err
			}
			index[id] = len(rows)
			rows = append(rows, SentenceCount{Id: id, Counts: make([]int, len(names)), AnyHit: stmt.ColumnBool(1)})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	err = sqlitex.Execute(conn, "SELECT sentence_id, lexicon, hit_count FROM sentence_lexicon_hits", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id, err := safecast.Conv[int](stmt.ColumnInt64(0))
			if err != nil {
				return err
			}
			i, ok := index[id]
			if !ok {
				return fmt.Errorf("hits for unknown sentence %d", id)
			}
			p, ok := position[stmt.ColumnText(1)]
			if !ok {
				return fmt.Errorf("hits for unknown lexicon %q", stmt.ColumnText(1))
			}
			rows[i].Counts[p] = stmt.ColumnInt(2)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}
