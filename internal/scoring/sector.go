package scoring

import "strings"

type sectorRule struct {
	Sector   string
	Keywords []string
}

// sectorRules maps content keywords to a sector. Order is significant:
// the first matching rule wins, so the table must stay stable across
// releases for deterministic matching.
var sectorRules = []sectorRule{
	{"technology", []string{"tech", "software", "semiconductor", "chip", "cloud computing", "artificial intelligence"}},
	{"healthcare", []string{"health", "pharma", "biotech", "medical", "drug"}},
	{"finance", []string{"bank", "fintech", "insurance", "brokerage", "payments"}},
	{"energy", []string{"oil", "gas", "solar", "renewable", "energy"}},
	{"retail", []string{"retail", "e-commerce", "consumer spending", "store"}},
	{"automotive", []string{"automaker", "automotive", "vehicle", "electric car"}},
}

// inferSector derives an article's sector from its title and description by
// keyword lookup. Returns false when no rule matches.
func inferSector(title, description string) (string, bool) {
	text := strings.ToLower(title + " " + description)
	for _, r := range sectorRules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Sector, true
			}
		}
	}
	return "", false
}
