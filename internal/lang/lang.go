// Package lang holds the localized message and label tables the menus read
// at draw time.
package lang

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/textenc"
)

// Sentinels rendered for ids outside the tables.
const (
	MissingMessage = "ERR_MSG_ID"
	MissingLabel   = "ERR_LBL_ID"
)

// Table owns one language's strings. Tables are replaced wholesale on a
// language switch; Generation changes with every replacement.
type Table struct {
	mu       sync.RWMutex
	messages []string
	labels   []string
	codec    textenc.Codec
	gen      uint64
}

// English returns a table holding the compiled-in English strings.
func English() *Table {
	t := &Table{}
	t.Replace(englishMessages[:], englishLabels[:], textenc.UTF8)
	return t
}

// Message returns the message for id, or the MissingMessage sentinel.
func (t *Table) Message(id MsgID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || int(id) >= len(t.messages) {
		return MissingMessage
	}
	return t.messages[id]
}

// Label returns the label for id, or the MissingLabel sentinel.
func (t *Table) Label(id LabelID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || int(id) >= len(t.labels) {
		return MissingLabel
	}
	return t.labels[id]
}

// Replace installs new tables. Missing trailing entries fall back to the
// English defaults so table length never shrinks below the known ids.
func (t *Table) Replace(messages, labels []string, codec textenc.Codec) {
	msgs := fill(messages, englishMessages[:])
	lbls := fill(labels, englishLabels[:])
	if codec == nil {
		codec = textenc.UTF8
	}
	t.mu.Lock()
	t.messages, t.labels, t.codec = msgs, lbls, codec
	t.gen++
	t.mu.Unlock()
}

func fill(in, defaults []string) []string {
	n := len(defaults)
	if len(in) > n {
		n = len(in)
	}
	out := make([]string, n)
	copy(out, defaults)
	for i, s := range in {
		if s != "" {
			out[i] = s
		}
	}
	return out
}

// Codec returns the encoding the table's strings are stored in.
func (t *Table) Codec() textenc.Codec {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.codec
}

// Generation identifies the current table contents.
func (t *Table) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gen
}

// Language describes one selectable UI language.
type Language struct {
	Code string
	Name string
	// Native is the name in the language itself.
	Native string
	Codec  textenc.Codec
	// SwapButtons confirms with Circle instead of Cross.
	SwapButtons bool
}

// Languages lists the supported languages, English first.
var Languages = []Language{
	{Code: "en", Name: "English", Native: "English", Codec: textenc.UTF8},
	{Code: "ja", Name: "Japanese", Native: "日本語", Codec: textenc.ShiftJIS, SwapButtons: true},
	{Code: "fr", Name: "French", Native: "Français", Codec: textenc.Windows1252},
	{Code: "es", Name: "Spanish", Native: "Español", Codec: textenc.Windows1252},
	{Code: "de", Name: "German", Native: "Deutsch", Codec: textenc.Windows1252},
	{Code: "it", Name: "Italian", Native: "Italiano", Codec: textenc.Windows1252},
	{Code: "nl", Name: "Dutch", Native: "Nederlands", Codec: textenc.Windows1252},
	{Code: "pt", Name: "Portuguese", Native: "Português", Codec: textenc.Windows1252},
}

// Find resolves a language by code or name. Exact matches win; otherwise the
// closest fuzzy match on the name is used.
func Find(query string) (Language, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Languages[0], true
	}
	names := make([]string, len(Languages))
	for i, l := range Languages {
		if strings.EqualFold(l.Code, q) || strings.EqualFold(l.Name, q) {
			return l, true
		}
		names[i] = l.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(q, names)
	if len(ranks) == 0 {
		return Language{}, false
	}
	sort.Sort(ranks)
	return Languages[ranks[0].OriginalIndex], true
}
