package restaurant

import (
	"strconv"
	"strings"

	"tablebooker/internal/model"
)

// Resolver decides which venue a conversation is about.
type Resolver struct {
	dir     *Directory
	aliases map[string][]string // microsite name -> lowercase match terms
}

// NewResolver builds a resolver over the loaded directory.
func NewResolver(dir *Directory) *Resolver {
	aliases := make(map[string][]string, dir.Len())
	for _, r := range dir.All() {
		aliases[r.Name] = buildAliases(r)
	}
	return &Resolver{dir: dir, aliases: aliases}
}

// buildAliases derives the match terms for a venue: its name, the name
// split into words (minus "the"), its cuisine, and a few colloquial
// extras keyed off the name.
func buildAliases(r model.Restaurant) []string {
	name := strings.ToLower(r.Name)
	terms := []string{name}

	spaced := strings.ReplaceAll(camelToSpaces(r.Name), "the ", "")
	for _, part := range strings.Fields(spaced) {
		if part != "" {
			terms = append(terms, part)
		}
	}
	if r.Cuisine != "" {
		terms = append(terms, strings.ToLower(r.Cuisine))
	}

	switch {
	case strings.Contains(name, "pizza"):
		terms = append(terms, "pizza", "pasta", "italian")
	case strings.Contains(name, "sushi"):
		terms = append(terms, "sushi", "japanese")
	case strings.Contains(name, "unicorn"):
		terms = append(terms, "unicorn", "fine dining", "european")
	case strings.Contains(name, "bistro"):
		terms = append(terms, "bistro", "cafe", "french")
	}

	return terms
}

// camelToSpaces turns "TheHungryUnicorn" into "the hungry unicorn".
func camelToSpaces(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r | 0x20)
	}
	return b.String()
}

// Resolve applies the selection rules in order and writes the result back
// into the session. promptNeeded means the orchestrator must present the
// venue list before doing anything else this turn.
//
// Rules: a single known venue is always auto-selected; an existing
// selection sticks unless the message names a different known venue; with
// several venues and no selection the caller must prompt.
func (r *Resolver) Resolve(sess *model.Session, text string) (selected string, promptNeeded bool) {
	if r.dir.Len() == 1 {
		sess.SelectedRestaurant = r.dir.All()[0].Name
		return sess.SelectedRestaurant, false
	}

	if named := r.Match(text); named != "" {
		sess.SelectedRestaurant = named
		return named, false
	}

	if sess.SelectedRestaurant != "" {
		return sess.SelectedRestaurant, false
	}

	return "", true
}

// Match finds a venue the text names, by ordinal position in the
// presented list ("1", "2", ...) or by case-insensitive alias. Empty
// string means no venue was named.
func (r *Resolver) Match(text string) string {
	trimmed := strings.TrimSpace(text)
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= r.dir.Len() {
		return r.dir.All()[n-1].Name
	}

	lower := strings.ToLower(text)
	for _, venue := range r.dir.All() {
		for _, term := range r.aliases[venue.Name] {
			if containsTerm(lower, term) {
				return venue.Name
			}
		}
	}
	return ""
}

// containsTerm reports whether term occurs in text on word boundaries.
// Plain substring matching would let fragments inside longer words pick
// a venue ("dozen" contains "zen").
func containsTerm(text, term string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(term)
		if (start == 0 || !isWordByte(text[start-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
