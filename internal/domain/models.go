package domain

import "time"

// CountryName carries the common and official spellings from the catalog.
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags holds the raster and vector flag image URLs.
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
}

// Currency describes one currency of a country.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Country is a read-only catalog entry. Identity is CCA3.
type Country struct {
	Name       CountryName         `json:"name"`
	Capital    []string            `json:"capital"`
	Population int64               `json:"population"`
	Region     string              `json:"region"`
	Flags      Flags               `json:"flags"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Borders    []string            `json:"borders,omitempty"`
	LatLng     []float64           `json:"latlng,omitempty"`
	CCA3       string              `json:"cca3"`
}

// FlagURL prefers the raster flag and falls back to the vector one.
func (c Country) FlagURL() string {
	if c.Flags.PNG != "" {
		return c.Flags.PNG
	}
	return c.Flags.SVG
}

// Difficulty selects the correct-answer pool for quiz generation.
type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
)

// ParseDifficulty validates a user-supplied difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", ErrInvalidInput
}

// QuizQuestion is a single multiple-choice flag question. Options contains the
// correct country exactly once; CorrectID keeps the answer's identity separate
// from presentation order.
type QuizQuestion struct {
	Correct   Country   `json:"-"`
	CorrectID string    `json:"-"`
	Options   []Country `json:"options"`
}

// QuizResult is an immutable record of one finished quiz run.
type QuizResult struct {
	PlayerName    string     `json:"playerName"`
	Score         int        `json:"score"`
	MaxScore      int        `json:"maxScore"`
	TimeInSeconds int        `json:"timeInSeconds"`
	Date          time.Time  `json:"date"`
	Difficulty    Difficulty `json:"difficulty"`
}

// AnswerOutcome summarizes one answer submission.
type AnswerOutcome struct {
	Correct  bool `json:"correct"`
	Finished bool `json:"finished"`
	Score    int  `json:"score"`
}

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a stored or submitted theme value.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", ErrInvalidInput
}
