package seo

import "unicode/utf8"

const (
	titleMinRunes       = 30
	titleMaxRunes       = 60
	titleIdealRunes     = 50
	descriptionMinRunes = 120
	descriptionMaxRunes = 160
	descriptionIdeal    = 150
	keywordsMin         = 3
	keywordsMax         = 10
)

// Audit grades generated metadata against search snippet limits.
type Audit struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// AuditQuality scores meta and its structured data. The score starts at 100 and never drops
// below 0.
func AuditQuality(meta Meta, structured []map[string]any) Audit {
	issues := []string{}
	suggestions := []string{}
	score := 100

	titleLen := utf8.RuneCountInString(meta.Title)
	switch {
	case titleLen < titleMinRunes:
		issues = append(issues, "Meta title is too short")
		score -= 20
	case titleLen > titleMaxRunes:
		issues = append(issues, "Meta title is too long")
		score -= 10
	}
	if titleLen < titleIdealRunes {
		suggestions = append(suggestions, "Consider making meta title longer for better SEO")
	}

	descLen := utf8.RuneCountInString(meta.Description)
	switch {
	case descLen < descriptionMinRunes:
		issues = append(issues, "Meta description is too short")
		score -= 20
	case descLen > descriptionMaxRunes:
		issues = append(issues, "Meta description is too long")
		score -= 10
	}
	if descLen < descriptionIdeal {
		suggestions = append(suggestions, "Consider making meta description longer for better SEO")
	}

	switch n := len(meta.Keywords); {
	case n < keywordsMin:
		issues = append(issues, "Too few keywords")
		score -= 15
	case n > keywordsMax:
		issues = append(issues, "Too many keywords")
		score -= 10
	}

	if !isAbsolute(meta.Canonical) {
		issues = append(issues, "Canonical URL should be absolute")
		score -= 15
	}

	if !hasSchemaContext(structured) {
		issues = append(issues, "Structured data is missing or invalid")
		score -= 20
	}

	return Audit{Score: max(0, score), Issues: issues, Suggestions: suggestions}
}

func hasSchemaContext(structured []map[string]any) bool {
	if len(structured) == 0 {
		return false
	}
	for _, schema := range structured {
		if ctx, _ := schema["@context"].(string); ctx == "" {
			return false
		}
	}
	return true
}
