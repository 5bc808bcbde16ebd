package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Extractor classifies a message and pulls out the slots it mentions.
// It is a pure function of the text: no network, no clock, no state.
type Extractor struct{}

// NewExtractor creates the lexical intent extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

var (
	ordinalRe  = regexp.MustCompile(`^[1-9]$`)
	greetingRe = regexp.MustCompile(`\b(hi|hey)\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`),
		regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{4})\b`),
		regexp.MustCompile(`\b(today|tonight|tomorrow|this weekend)\b`),
		regexp.MustCompile(`\b(next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`),
		regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		regexp.MustCompile(`\b(in \d+ (?:days?|weeks?))\b`),
		regexp.MustCompile(`\b((?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec) \d{1,2}(?: \d{4})?)\b`),
	}

	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{1,2}:\d{2}\s*(?:am|pm)?)\b`),
		regexp.MustCompile(`\b(\d{1,2}\s*(?:am|pm))\b`),
		regexp.MustCompile(`\bat (\d{1,2})\b`),
	}

	// The bare "for N" pattern captures a trailing time marker so a
	// phrase like "for 7pm" is not mistaken for a party size.
	partyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d+)\s*people\b`),
		regexp.MustCompile(`\b(\d+)\s*guests\b`),
		regexp.MustCompile(`\bparty of (\d+)\b`),
		regexp.MustCompile(`\btable for (\d+)\b`),
		regexp.MustCompile(`\bfor (\d+)(\s*(?:am|pm|:|o'clock))?`),
	}

	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s-]{8,}\d`)

	referencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`BOOKING\s+REFERENCE(?:\s+IS)?\s+([A-Z0-9]{7})\b`),
		regexp.MustCompile(`REFERENCE(?:\s+IS)?\s+([A-Z0-9]{7})\b`),
		regexp.MustCompile(`BOOKING\s+([A-Z0-9]{7})\b`),
		regexp.MustCompile(`REF(?:\s+IS)?\s+([A-Z0-9]{7})\b`),
		regexp.MustCompile(`#([A-Z0-9]{7})\b`),
		regexp.MustCompile(`MY\s+BOOKING\s+([A-Z0-9]{7})\b`),
		regexp.MustCompile(`\b([A-Z0-9]{7})\b`),
	}
	hasDigitRe = regexp.MustCompile(`\d`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`name is ([A-Za-z ]+)`),
		regexp.MustCompile(`[Ii]'m ([A-Za-z ]+)`),
		regexp.MustCompile(`my name's ([A-Za-z ]+)`),
		regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`),
	}
	nameExcludedWords = []string{"book", "table", "people", "tomorrow", "today", "reservation", "august", "email"}
)

// Extract classifies text and fills whatever slots it can find.
// It never fails: an unmatched message yields KindOther with the raw
// text attached.
func (e *Extractor) Extract(text string) Intent {
	out := Intent{Kind: KindOther, Raw: text}
	lower := strings.ToLower(text)
	trimmed := strings.TrimSpace(text)

	out.Kind = e.classify(lower, trimmed)
	out.DateToken = firstMatch(datePatterns, lower)
	out.TimeToken = strings.TrimSpace(firstMatch(timePatterns, lower))
	out.PartySize = extractPartySize(lower)
	out.Reference = extractReference(strings.ToUpper(text))
	out.Email = emailRe.FindString(text)
	out.Phone = strings.TrimSpace(phoneRe.FindString(text))
	out.Name = extractName(text)

	return out
}

func (e *Extractor) classify(lower, trimmed string) Kind {
	if ordinalRe.MatchString(trimmed) {
		return KindSelectRestaurant
	}

	for _, rule := range classificationOrder {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.kind
			}
		}
	}

	// Bare greetings need word-boundary matching so "this" or "chips"
	// do not read as "hi".
	if greetingRe.MatchString(lower) {
		return KindGreeting
	}

	return KindOther
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractPartySize(lower string) int {
	for _, re := range partyPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if len(m) > 2 && m[2] != "" {
			// "for 7pm" matched the bare pattern; that's a time.
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		return n
	}
	return 0
}

func extractReference(upper string) string {
	for _, re := range referencePatterns {
		m := re.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		ref := m[1]
		if referenceExcludedWords[ref] {
			continue
		}
		if !hasDigitRe.MatchString(ref) {
			continue
		}
		return ref
	}
	return ""
}

func extractName(text string) string {
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || !isAlphaWithSpaces(candidate) {
			continue
		}
		if containsExcludedWord(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

func isAlphaWithSpaces(s string) bool {
	for _, r := range s {
		if r != ' ' && !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

func containsExcludedWord(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, w := range nameExcludedWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
