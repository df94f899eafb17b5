package sentence

// Sentence is a sentence of the corpus as delivered by the annotator.
type Sentence struct {
	Id   int    `json:"id"`
	Text string `json:"text"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// Corpus is the annotated corpus: the complete sentence list and the token
// stream, both in annotator order.
type Corpus struct {
	Sentences []Sentence
	Tokens    []Token
}
