package app

import "globetrotter-service/internal/domain"

// Curated correct-answer pools per difficulty, as cca3 codes. These are content
// configuration, not behavior: beginner holds widely recognized countries, easy
// and medium widen the pool, hard uses the whole catalog. Decoys always come
// from the full catalog regardless of difficulty.

var beginnerPool = []string{
	"USA", "GBR", "FRA", "DEU", "ITA", "ESP", "PRT", "JPN", "CHN", "IND",
	"BRA", "CAN", "AUS", "RUS", "MEX", "NLD", "CHE", "SWE", "NOR", "GRC",
	"TUR", "EGY", "ZAF", "ARG", "KOR", "POL", "AUT", "BEL", "IRL", "NZL",
	"DNK", "FIN", "SAU", "ARE", "THA", "ISR", "UKR", "COL", "CHL", "IDN",
}

var easyPool = append(beginnerPool[:len(beginnerPool):len(beginnerPool)],
	"VNM", "PHL", "MYS", "SGP", "PAK", "BGD", "NGA", "KEN", "MAR", "DZA",
	"TUN", "ETH", "GHA", "PER", "VEN", "ECU", "URY", "BOL", "CUB", "DOM",
	"CRI", "PAN", "HUN", "CZE", "SVK", "ROU", "BGR", "HRV", "SRB", "ISL",
	"LUX", "QAT", "KWT", "JOR", "LBN", "IRQ", "IRN", "LKA", "NPL", "MMR",
)

var mediumPool = append(easyPool[:len(easyPool):len(easyPool)],
	"MLT", "CYP", "EST", "LVA", "LTU", "SVN", "ALB", "MKD", "BIH", "MNE",
	"GEO", "ARM", "AZE", "KAZ", "UZB", "MNG", "KHM", "LAO", "TWN", "BHR",
	"OMN", "YEM", "SYR", "AFG", "SEN", "CIV", "CMR", "UGA", "TZA", "ZMB",
	"ZWE", "BWA", "NAM", "MOZ", "AGO", "SDN", "LBY", "MDG", "JAM", "TTO",
	"BHS", "HTI", "GTM", "HND", "NIC", "SLV", "PRY", "GUY", "SUR", "BLZ",
)

// correctAnswerPool filters the catalog down to the countries eligible as a
// correct answer for the given difficulty. Hard returns the full catalog.
func correctAnswerPool(catalog []domain.Country, difficulty domain.Difficulty) []domain.Country {
	var codes []string
	switch difficulty {
	case domain.DifficultyBeginner:
		codes = beginnerPool
	case domain.DifficultyEasy:
		codes = easyPool
	case domain.DifficultyMedium:
		codes = mediumPool
	default:
		return catalog
	}

	eligible := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		eligible[code] = struct{}{}
	}

	pool := make([]domain.Country, 0, len(codes))
	for _, country := range catalog {
		if _, ok := eligible[country.CCA3]; ok {
			pool = append(pool, country)
		}
	}
	return pool
}
