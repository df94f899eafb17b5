package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/revelaction/lexhit/freq"
	"github.com/revelaction/lexhit/lexicon"
	"github.com/revelaction/lexhit/stat"
)

// Renderer writes human readable reports.
type Renderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	// PrefixFunc builds the prefix of a sentence line when HasPrefix is
	// set. Defaults to PrefixFuncIconHand.
	PrefixFunc func(stat.SentenceHits) string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, HasPrefix: true}
}

func PrefixFuncEmpty(s stat.SentenceHits) string {
	return ""
}

func PrefixFuncIconHand(s stat.SentenceHits) string {
	return fmt.Sprintf("%5d ✍  ", s.Id)
}

func (r *Renderer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.HasColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (r *Renderer) heading(format string, a ...any) {
	r.color(color.Bold, color.FgCyan).Fprintf(r.W, format+"\n", a...)
}

// Summary writes the corpus statistics of a run followed by the top lemmas
// of every combined label and the hit count distribution of every lexicon.
func (r *Renderer) Summary(st stat.Stats, t *freq.Table, top int) {
	r.heading("Corpus")
	fmt.Fprintf(r.W, "  %-28s %d\n", "sentences", st.NumSentences)
	fmt.Fprintf(r.W, "  %-28s %s\n", "with any hit", rate(st.AnyHit))

	if len(st.Lexicons) > 0 {
		fmt.Fprintln(r.W)
		r.heading("Sentences with hits")
		for _, ls := range st.Lexicons {
			fmt.Fprintf(r.W, "  %-28s %s, %d tokens\n", ls.Name, rate(ls.Sentences), ls.Tokens)
		}
	}

	if len(st.Pairs) > 0 {
		fmt.Fprintln(r.W)
		r.heading("Sentences hit by both")
		for _, p := range st.Pairs {
			fmt.Fprintf(r.W, "  %-28s %s\n", p.A+" + "+p.B, rate(p.Sentences))
		}
	}

	if t != nil {
		for _, label := range t.Labels() {
			fmt.Fprintln(r.W)
			r.heading("Top lemmas: %s", label)
			r.entries(t.Top(label, top))
		}
	}

	for _, ls := range st.Lexicons {
		fmt.Fprintln(r.W)
		r.heading("Hit count distribution: %s", ls.Name)
		for k, n := range ls.Distribution {
			fmt.Fprintf(r.W, "  %3d %8d\n", k, n)
		}
	}
}

// Frequencies writes a lemma list, most common first.
func (r *Renderer) Frequencies(name string, entries []freq.Entry) {
	r.heading("%s", name)
	r.entries(entries)
}

func (r *Renderer) entries(entries []freq.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(r.W, "  (none)")
		return
	}

	for _, e := range entries {
		fmt.Fprintf(r.W, "  %s %6d\n", runewidth.FillRight(e.Lemma, 28), e.Count)
	}
}

// Sentences writes one line per sentence, followed by the matched lemmas
// of each lexicon that hit it.
func (r *Renderer) Sentences(rows []stat.SentenceHits) {
	lemmaColor := r.color(color.FgGreen)
	nameColor := r.color(color.FgYellow)

	for _, s := range rows {
		fmt.Fprintf(r.W, "%s%s\n", r.buildPrefix(s), strings.ReplaceAll(s.Text, "\n", " "))

		for _, h := range s.Hits {
			if len(h.Lemmas) == 0 {
				continue
			}
			fmt.Fprintf(r.W, "        %s %s\n", nameColor.Sprintf("%s:", h.Lexicon), lemmaColor.Sprint(strings.Join(h.Lemmas, " ")))
		}
	}
}

// Lexicons writes the active lexicons in match order with the number of
// lemmas per category.
func (r *Renderer) Lexicons(lexicons []*lexicon.Lexicon) {
	header := []string{fmt.Sprintf("%-20s", "lexicon")}
	for _, c := range lexicon.Categories {
		header = append(header, fmt.Sprintf("%10s", c.String()))
	}
	r.heading("%s", strings.Join(header, " "))

	for _, lx := range lexicons {
		line := []string{runewidth.FillRight(lx.Name, 20)}
		for _, c := range lexicon.Categories {
			line = append(line, fmt.Sprintf("%10d", lx.Size(c)))
		}
		fmt.Fprintln(r.W, strings.Join(line, " "))
	}
}

func (r *Renderer) buildPrefix(s stat.SentenceHits) string {
	if !r.HasPrefix {
		return PrefixFuncEmpty(s)
	}

	if r.PrefixFunc != nil {
		return r.PrefixFunc(s)
	}

	return PrefixFuncIconHand(s)
}

// rate renders a rate with its numerator, "undefined" over an empty corpus.
func rate(rt stat.Rate) string {
	if !rt.Defined() {
		return rt.String()
	}
	return fmt.Sprintf("%s (%d)", rt, rt.Num)
}
