package domain

// Entry is one JMdict record (<entry>).
type Entry struct {
	// ID is the ent_seq sequence number. Never zero.
	ID        uint32          `json:"id"`
	Headwords []HeadwordGroup `json:"headwords,omitempty"`
	// Readings always holds at least one element.
	Readings []ReadingGroup `json:"readings"`
	Senses   []Sense        `json:"senses,omitempty"`
}

// PrimaryText returns the first headword text, falling back to the first reading.
func (e *Entry) PrimaryText() string {
	if len(e.Headwords) > 0 {
		return e.Headwords[0].Text
	}
	if len(e.Readings) > 0 {
		return e.Readings[0].Text
	}
	return ""
}

// HeadwordGroup is one written form (<k_ele>).
type HeadwordGroup struct {
	Text       string   `json:"text"`                 // keb
	Categories []string `json:"categories,omitempty"` // ke_inf, entity names without delimiters
	Priorities []string `json:"priorities,omitempty"` // ke_pri
}

// ReadingGroup is one phonetic form (<r_ele>).
type ReadingGroup struct {
	Text string `json:"text"` // reb
	// NoHeadword is set by re_nokanji: the reading is not a true reading of any headword.
	NoHeadword bool `json:"no_headword,omitempty"`
	// RestrictedTo lists headword texts this reading applies to. Empty means all.
	RestrictedTo []string `json:"restricted_to,omitempty"`
	Categories   []string `json:"categories,omitempty"` // re_inf
	Priorities   []string `json:"priorities,omitempty"` // re_pri
}

// Sense is one meaning unit (<sense>).
type Sense struct {
	HeadwordRestriction []string         `json:"headword_restriction,omitempty"` // stagk
	ReadingRestriction  []string         `json:"reading_restriction,omitempty"`  // stagr
	PartsOfSpeech       []string         `json:"parts_of_speech,omitempty"`      // pos
	CrossReferences     []CrossReference `json:"cross_references,omitempty"`     // xref
	Glosses             []string         `json:"glosses,omitempty"`

	// Language is the xml:lang shared by every gloss of the sense.
	// JMdict repeats it on each gloss; it is stored once here.
	Language *string `json:"language,omitempty"`
}

// LanguageOr returns the sense language or def when none was annotated.
func (s *Sense) LanguageOr(def string) string {
	if s.Language == nil {
		return def
	}
	return *s.Language
}

// CrossReference points at another entry by headword or reading, optionally
// narrowed by reading and sense number. It is not resolved at parse time.
type CrossReference struct {
	Target     string  `json:"target"`
	Reading    *string `json:"reading,omitempty"`
	SenseIndex *uint8  `json:"sense_index,omitempty"`
}
