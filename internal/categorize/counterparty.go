package categorize

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultCounterpartyMaxWords caps the last-resort fallback that takes
// the leading words of the cleaned detail as the counterparty.
const DefaultCounterpartyMaxWords = 5

// Label-anchored captures. These cover the structured phrasings the
// statements use for transfers and card rows.
var (
	sentMoneyRe    = regexp.MustCompile(`(?i)sent money to\s+(.+?)(?:\s+transaction:|$)`)
	receivedFromRe = regexp.MustCompile(`(?i)received money from\s+(.+?)(?:\s+with reference|\s+transaction:|$)`)
	issuedByRe     = regexp.MustCompile(`(?i)issued by\s+(.+?)(?:\s+card ending|\s+transaction:|$)`)
	taxAdminRe     = regexp.MustCompile(`(?i)administratio\s+([0-9]+)`)
)

// boilerplateRes strips transaction-type phrases, embedded references,
// and trailing currency amounts before the name heuristics run.
var boilerplateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)24x7\s*pay\s*third\s*parties`),
	regexp.MustCompile(`(?i)24x7\s*pay`),
	regexp.MustCompile(`(?i)third\s*parties`),
	regexp.MustCompile(`(?i)payment order outwards same day`),
	regexp.MustCompile(`(?i)payment order outwards`),
	regexp.MustCompile(`(?i)account to account transfer express deposits`),
	regexp.MustCompile(`(?i)account to account transfer`),
	regexp.MustCompile(`(?i)transfer between own accounts`),
	regexp.MustCompile(`(?i)sct instant payments inwards`),
	regexp.MustCompile(`(?i)sct inwards`),
	regexp.MustCompile(`(?i)sct outwards`),
	regexp.MustCompile(`(?i)unprocessed standing instruction charge`),
	regexp.MustCompile(`(?i)standing instruction charge`),
	regexp.MustCompile(`(?i)standing instruction`),
	regexp.MustCompile(`(?i)administration fee`),
	regexp.MustCompile(`(?i)sdd outwards fee`),
	regexp.MustCompile(`(?i)atm cash deposit`),
	regexp.MustCompile(`(?i)cheque deposit.*$`),
	regexp.MustCompile(`(?i)cheque returned fee.*$`),
	regexp.MustCompile(`(?i)cheque book order fee.*$`),
	regexp.MustCompile(`(?i)cheque\s+\d+.*`),
	regexp.MustCompile(`(?i)relation:\s*[^,]+`),
	regexp.MustCompile(`(?i)reason:\s*[^,]+`),
	regexp.MustCompile(`(?i)value date\s*-\s*[0-9/]+`),
	regexp.MustCompile(`(?i)ref\s*:\s*[-0-9A-Za-z.]+.*$`),
	regexp.MustCompile(`(?i)\s+(?:eur|gbp|usd)\s+[0-9.,]+`),
}

// Name-shape heuristics, in decreasing order of confidence.
var (
	companySuffixRe = regexp.MustCompile(`(?i)\b([A-Za-z][A-Za-z &.'-]*\s(?:ltd|limited|plc|co|company))\b`)
	personTitleRe   = regexp.MustCompile(`\b(?:Mr|Ms|Mrs|Dr)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`)
	upperRunRe      = regexp.MustCompile(`\b([A-Z][A-Z &.'-]{2,})\b`)
	capitalizedRe   = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,4})\b`)
	trailerSplitRe  = regexp.MustCompile(`(?i)ref\s*:|value date|relation:`)
	currencySplitRe = regexp.MustCompile(`(?i)\s+(?:eur|gbp|usd)\s+`)
)

// fieldTypeKeywords identify a leading sub-field as a transaction-type
// marker in delimiter-structured details; the counterparty then sits in
// the following sub-field.
var fieldTypeKeywords = []string{
	"card payment", "card transaction", "direct debit",
	"transfer", "standing order", "payment", "sent money", "received money",
}

// CounterpartyExtractor infers the other party's name from transaction
// detail text. Pure; safe for concurrent use.
type CounterpartyExtractor struct {
	maxWords int
}

// NewCounterpartyExtractor creates an extractor. maxWords caps the
// leading-words fallback; values below 1 use the default.
func NewCounterpartyExtractor(maxWords int) *CounterpartyExtractor {
	if maxWords < 1 {
		maxWords = DefaultCounterpartyMaxWords
	}
	return &CounterpartyExtractor{maxWords: maxWords}
}

// Extract returns the best-guess counterparty in detail, or "" when
// nothing name-like can be identified.
func (e *CounterpartyExtractor) Extract(detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return ""
	}

	if name := fromDelimitedFields(detail); name != "" {
		return name
	}

	for _, re := range []*regexp.Regexp{sentMoneyRe, receivedFromRe, issuedByRe} {
		if m := re.FindStringSubmatch(detail); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Tax administration rows carry only a payer reference number.
	if m := taxAdminRe.FindStringSubmatch(detail); m != nil {
		return m[1]
	}

	cleaned := detail
	for _, re := range boilerplateRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.TrimSpace(trailerSplitRe.Split(cleaned, 2)[0])

	if m := companySuffixRe.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}

	// Drop anything after an embedded currency amount.
	if head := strings.TrimSpace(currencySplitRe.Split(cleaned, 2)[0]); len(head) >= 3 {
		cleaned = head
	}

	if m := personTitleRe.FindString(cleaned); m != "" {
		return m
	}
	if m := upperRunRe.FindStringSubmatch(cleaned); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := capitalizedRe.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}

	words := strings.Fields(cleaned)
	if len(words) > e.maxWords {
		words = words[:e.maxWords]
	}
	residual := strings.Join(words, " ")
	if codeLike(residual) {
		return ""
	}
	return residual
}

// codeLike reports whether a residual string is indistinguishable from
// a reference code or date fragment: no letters at all, or a single
// token mixing letters with digits, hyphens, or slashes.
func codeLike(s string) bool {
	if !hasLetter(s) {
		return true
	}
	if strings.ContainsRune(s, ' ') {
		return false
	}
	return strings.ContainsAny(s, "-_/0123456789")
}

// fromDelimitedFields handles pipe-structured details where the first
// sub-field is a transaction type and the second the counterparty.
func fromDelimitedFields(detail string) string {
	if !strings.Contains(detail, "|") {
		return ""
	}
	fields := strings.Split(detail, "|")
	if len(fields) < 2 {
		return ""
	}
	first := Normalize(fields[0])
	for _, kw := range fieldTypeKeywords {
		if strings.Contains(first, kw) {
			candidate := strings.TrimSpace(fields[1])
			if hasLetter(candidate) {
				return candidate
			}
			return ""
		}
	}
	return ""
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
