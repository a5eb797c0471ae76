package app

// Per-region base rates: a one-time flight cost per traveler plus three
// per-day-per-traveler rates. Content configuration, same footing as the
// difficulty pools.
type regionProfile struct {
	flightBase       float64
	lodgingPerNight  float64
	foodPerDay       float64
	activitiesPerDay float64
}

const defaultRegion = "default"

var regionProfiles = map[string]regionProfile{
	"europe":        {flightBase: 800, lodgingPerNight: 120, foodPerDay: 50, activitiesPerDay: 40},
	"asia":          {flightBase: 950, lodgingPerNight: 60, foodPerDay: 25, activitiesPerDay: 25},
	"africa":        {flightBase: 900, lodgingPerNight: 70, foodPerDay: 30, activitiesPerDay: 35},
	"north america": {flightBase: 600, lodgingPerNight: 140, foodPerDay: 55, activitiesPerDay: 45},
	"south america": {flightBase: 750, lodgingPerNight: 80, foodPerDay: 30, activitiesPerDay: 30},
	"oceania":       {flightBase: 1300, lodgingPerNight: 130, foodPerDay: 50, activitiesPerDay: 45},
	"middle east":   {flightBase: 850, lodgingPerNight: 110, foodPerDay: 40, activitiesPerDay: 35},
	defaultRegion:   {flightBase: 850, lodgingPerNight: 100, foodPerDay: 40, activitiesPerDay: 35},
}

// regionCountries maps each region to lowercase country names used for
// membership and substring matching. Unlisted countries fall back to default.
var regionCountries = map[string][]string{
	"europe": {
		"france", "germany", "italy", "spain", "portugal", "united kingdom",
		"ireland", "netherlands", "belgium", "switzerland", "austria", "greece",
		"sweden", "norway", "denmark", "finland", "iceland", "poland", "czechia",
		"hungary", "romania", "bulgaria", "croatia", "serbia", "ukraine",
	},
	"asia": {
		"japan", "china", "india", "thailand", "vietnam", "indonesia",
		"malaysia", "singapore", "philippines", "south korea", "taiwan",
		"cambodia", "laos", "nepal", "sri lanka", "pakistan", "bangladesh",
	},
	"africa": {
		"egypt", "morocco", "south africa", "kenya", "tanzania", "nigeria",
		"ghana", "ethiopia", "tunisia", "algeria", "senegal", "madagascar",
	},
	"north america": {
		"united states", "canada", "mexico", "costa rica", "panama", "cuba",
		"jamaica", "guatemala", "dominican republic", "bahamas",
	},
	"south america": {
		"brazil", "argentina", "chile", "peru", "colombia", "ecuador",
		"bolivia", "uruguay", "paraguay", "venezuela",
	},
	"oceania": {
		"australia", "new zealand", "fiji", "samoa", "tonga", "vanuatu",
	},
	"middle east": {
		"united arab emirates", "saudi arabia", "israel", "jordan", "qatar",
		"oman", "kuwait", "bahrain", "lebanon", "turkey",
	},
}

// costOfLiving holds per-country multipliers applied to region base rates.
// Countries not listed use 1.0.
var costOfLiving = map[string]float64{
	"switzerland":          1.8,
	"norway":               1.6,
	"iceland":              1.6,
	"denmark":              1.4,
	"japan":                1.4,
	"singapore":            1.5,
	"united states":        1.3,
	"united kingdom":       1.3,
	"australia":            1.3,
	"france":               1.2,
	"germany":              1.1,
	"canada":               1.2,
	"new zealand":          1.2,
	"israel":               1.3,
	"united arab emirates": 1.2,
	"italy":                1.1,
	"spain":                0.9,
	"portugal":             0.8,
	"greece":               0.8,
	"poland":               0.7,
	"czechia":              0.8,
	"hungary":              0.7,
	"mexico":               0.7,
	"brazil":               0.7,
	"argentina":            0.6,
	"colombia":             0.5,
	"peru":                 0.5,
	"thailand":             0.6,
	"vietnam":              0.5,
	"indonesia":            0.5,
	"india":                0.4,
	"philippines":          0.5,
	"egypt":                0.4,
	"morocco":              0.5,
	"turkey":               0.5,
	"south africa":         0.6,
	"kenya":                0.6,
}
