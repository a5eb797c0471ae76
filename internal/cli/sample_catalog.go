package cli

import "globetrotter-service/internal/domain"

// sampleCatalog provides a minimal demo catalog; point the countries source at
// restcountries or postgres for the full one.
func sampleCatalog() []domain.Country {
	entries := []struct {
		cca3, common, official, capital, region string
	}{
		{"USA", "United States", "United States of America", "Washington, D.C.", "Americas"},
		{"GBR", "United Kingdom", "United Kingdom of Great Britain and Northern Ireland", "London", "Europe"},
		{"FRA", "France", "French Republic", "Paris", "Europe"},
		{"DEU", "Germany", "Federal Republic of Germany", "Berlin", "Europe"},
		{"ITA", "Italy", "Italian Republic", "Rome", "Europe"},
		{"ESP", "Spain", "Kingdom of Spain", "Madrid", "Europe"},
		{"PRT", "Portugal", "Portuguese Republic", "Lisbon", "Europe"},
		{"JPN", "Japan", "Japan", "Tokyo", "Asia"},
		{"CHN", "China", "People's Republic of China", "Beijing", "Asia"},
		{"IND", "India", "Republic of India", "New Delhi", "Asia"},
		{"BRA", "Brazil", "Federative Republic of Brazil", "Brasília", "Americas"},
		{"CAN", "Canada", "Canada", "Ottawa", "Americas"},
		{"AUS", "Australia", "Commonwealth of Australia", "Canberra", "Oceania"},
		{"MEX", "Mexico", "United Mexican States", "Mexico City", "Americas"},
		{"EGY", "Egypt", "Arab Republic of Egypt", "Cairo", "Africa"},
		{"ZAF", "South Africa", "Republic of South Africa", "Pretoria", "Africa"},
	}

	countries := make([]domain.Country, 0, len(entries))
	for _, e := range entries {
		countries = append(countries, domain.Country{
			Name:    domain.CountryName{Common: e.common, Official: e.official},
			Capital: []string{e.capital},
			Region:  e.region,
			Flags: domain.Flags{
				PNG: "https://flagcdn.com/w320/" + lowerCCA3(e.cca3) + ".png",
				SVG: "https://flagcdn.com/" + lowerCCA3(e.cca3) + ".svg",
			},
			CCA3: e.cca3,
		})
	}
	return countries
}

// lowerCCA3 derives the flagcdn path segment for the demo fixture only.
func lowerCCA3(cca3 string) string {
	codes := map[string]string{
		"USA": "us", "GBR": "gb", "FRA": "fr", "DEU": "de", "ITA": "it",
		"ESP": "es", "PRT": "pt", "JPN": "jp", "CHN": "cn", "IND": "in",
		"BRA": "br", "CAN": "ca", "AUS": "au", "MEX": "mx", "EGY": "eg",
		"ZAF": "za",
	}
	return codes[cca3]
}
