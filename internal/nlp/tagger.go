package nlp

import (
	"regexp"
	"strings"
)

// Entity labels emitted by the tagger.
const (
	LabelPerson  = "PERSON"
	LabelOrg     = "ORG"
	LabelProduct = "PRODUCT"
)

// Entity is one tagged span: its surface text and label, in document order.
type Entity struct {
	Text  string
	Label string
}

// Tagger produces entities from plain text.
type Tagger interface {
	Entities(text string) []Entity
}

// RuleTagger is a deterministic pattern-based tagger. It recognizes person
// names (capitalized word pairs on their own line), organizations (capitalized
// phrases ending in a corporate or academic suffix) and products from a fixed
// lexicon. Good enough for the parser, which only reads PERSON and ORG/PRODUCT
// membership.
type RuleTagger struct {
	personLine *regexp.Regexp
	orgPhrase  *regexp.Regexp
	products   []string
}

// NewRuleTagger constructs a RuleTagger with the default lexicon.
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{
		personLine: regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z]\.?)?(?:\s+[A-Z][a-z]+){1,2}$`),
		orgPhrase:  regexp.MustCompile(`\b(?:[A-Z][A-Za-z&.]*\s+){0,4}(?:Inc\.?|LLC|Corp\.?|Ltd\.?|University|College|Institute|Technologies|Labs|Systems|Solutions)\b`),
		products: []string{
			"AWS", "Azure", "GCP", "Kubernetes", "Docker", "React", "Angular",
			"Django", "Flask", "PostgreSQL", "MongoDB", "MySQL", "TensorFlow",
			"PyTorch", "Linux", "Git", "Jenkins", "Terraform", "Tableau",
		},
	}
}

// Entities tags the text, scanning line by line so ordering follows the
// document. A line that looks like a bare name is tagged PERSON; org suffixes
// and product lexicon hits are tagged within each line.
func (t *RuleTagger) Entities(text string) []Entity {
	var out []Entity
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if t.personLine.MatchString(trimmed) && !t.looksLikeOrg(trimmed) {
			out = append(out, Entity{Text: trimmed, Label: LabelPerson})
			continue
		}
		for _, match := range t.orgPhrase.FindAllString(trimmed, -1) {
			out = append(out, Entity{Text: strings.TrimSpace(match), Label: LabelOrg})
		}
		out = append(out, t.productHits(trimmed)...)
	}
	return out
}

func (t *RuleTagger) looksLikeOrg(line string) bool {
	return t.orgPhrase.MatchString(line)
}

func (t *RuleTagger) productHits(line string) []Entity {
	var out []Entity
	for _, product := range t.products {
		idx := 0
		for {
			pos := strings.Index(line[idx:], product)
			if pos < 0 {
				break
			}
			abs := idx + pos
			if isWordBoundary(line, abs, len(product)) {
				out = append(out, Entity{Text: product, Label: LabelProduct})
				// one hit per product per line keeps output stable
				break
			}
			idx = abs + len(product)
			if idx >= len(line) {
				break
			}
		}
	}
	return out
}

func isWordBoundary(s string, start, length int) bool {
	before := start == 0 || !isWordChar(s[start-1])
	end := start + length
	after := end >= len(s) || !isWordChar(s[end])
	return before && after
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
