package http

import "globetrotter-service/internal/domain"

// optionView is how an answer option is presented to clients: identity plus
// display fields, never the correct flag.
type optionView struct {
	CountryID string `json:"countryId"`
	Name      string `json:"name"`
	Flag      string `json:"flag"`
}

// questionView is one rendered question. The correct answer stays server-side.
type questionView struct {
	Number  int          `json:"number"`
	Options []optionView `json:"options"`
}

func questionViews(questions []domain.QuizQuestion) []questionView {
	views := make([]questionView, 0, len(questions))
	for i, q := range questions {
		options := make([]optionView, 0, len(q.Options))
		for _, c := range q.Options {
			options = append(options, optionView{
				CountryID: c.CCA3,
				Name:      c.Name.Common,
				Flag:      c.FlagURL(),
			})
		}
		views = append(views, questionView{Number: i + 1, Options: options})
	}
	return views
}
