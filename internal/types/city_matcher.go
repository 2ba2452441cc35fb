package types

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"
)

// cityAliases maps lowercase aliases found in generated day titles to
// canonical city names. Covers the same ~40 cities as the fallback tables,
// plus the shorthand forms the model likes to use.
var cityAliases = map[string]string{
	"colombo":      "Colombo",
	"kandy":        "Kandy",
	"nuwara eliya": "Nuwara Eliya",
	"nuwaraeliya":  "Nuwara Eliya",
	"ella":         "Ella",
	"yala":         "Yala",
	"galle":        "Galle",
	"sigiriya":     "Sigiriya",
	"polonnaruwa":  "Polonnaruwa",
	"anuradhapura": "Anuradhapura",
	"bentota":      "Bentota",
	"mirissa":      "Mirissa",
	"trincomalee":  "Trincomalee",
	"trinco":       "Trincomalee",
	"jaffna":       "Jaffna",
	"dambulla":     "Dambulla",
	"hikkaduwa":    "Hikkaduwa",
	"arugam bay":   "Arugam Bay",
	"arugambay":    "Arugam Bay",
	"negombo":      "Negombo",
	"batticaloa":   "Batticaloa",
	"batti":        "Batticaloa",
	"pasikudah":    "Pasikudah",
	"weligama":     "Weligama",
	"tangalle":     "Tangalle",
	"badulla":      "Badulla",
	"bandarawela":  "Bandarawela",
	"hatton":       "Hatton",
	"matara":       "Matara",
	"hambantota":   "Hambantota",
	"kalutara":     "Kalutara",
	"beruwala":     "Beruwala",
	"chilaw":       "Chilaw",
	"puttalam":     "Puttalam",
	"ratnapura":    "Ratnapura",
	"kitulgala":    "Kitulgala",
	"kegalle":      "Kegalle",
	"kurunegala":   "Kurunegala",
	"matale":       "Matale",
	"monaragala":   "Monaragala",
	"ampara":       "Ampara",
	"vavuniya":     "Vavuniya",
	"mannar":       "Mannar",
	"udawalawe":    "Udawalawe",
	"wilpattu":     "Wilpattu",
}

var cityMatcher a.AhoCorasick

func init() {
	aliases := make([]string, 0, len(cityAliases))
	for alias := range cityAliases {
		aliases = append(aliases, alias)
	}
	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            a.LeftMostLongestMatch,
	})
	cityMatcher = builder.Build(aliases)
}

// CityFromTitle resolves the owning city from a generated day title like
// "Day 3: Beaches of Trinco". Returns "" when no known alias appears.
// Longest match wins so "Nuwara Eliya" is not shadowed by a shorter alias.
func CityFromTitle(title string) string {
	lower := strings.ToLower(title)

	best := ""
	bestLen := 0
	for _, match := range cityMatcher.FindAll(lower) {
		alias := lower[match.Start():match.End()]
		if len(alias) > bestLen {
			bestLen = len(alias)
			best = cityAliases[alias]
		}
	}
	return best
}
