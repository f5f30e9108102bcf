package ingest

import "strings"

// DefaultCategory is assigned when no classification rule matches.
const DefaultCategory = "General"

// classificationRule maps a category label to the keywords that select it.
type classificationRule struct {
	Label    string
	Keywords []string
}

// classificationRules is ordered: the first rule with any keyword matching
// wins, so earlier categories take precedence on ambiguous titles.
var classificationRules = []classificationRule{
	{Label: "Technology", Keywords: []string{"tech", "apple", "google", "software", "ai"}},
	{Label: "Politics", Keywords: []string{"politic", "government", "election", "parliament"}},
	{Label: "Sports", Keywords: []string{"sport", "football", "basketball", "game", "match"}},
	{Label: "Business", Keywords: []string{"business", "market", "economy", "finance"}},
	{Label: "Health", Keywords: []string{"health", "medical", "disease", "vaccine"}},
	{Label: "Science", Keywords: []string{"science", "research", "discover", "astronomy"}},
}

// Classify assigns a category label based on substring matches against the
// lowercased title and description. Pure and total: every input maps to
// exactly one label, falling back to DefaultCategory.
func Classify(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, rule := range classificationRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Label
			}
		}
	}
	return DefaultCategory
}
