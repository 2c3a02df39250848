package matches

// Statistics summarise a set of matches from the academy's point of view.
type Statistics struct {
	Played         int `json:"played" yaml:"played"`
	Wins           int `json:"wins" yaml:"wins"`
	Draws          int `json:"draws" yaml:"draws"`
	Losses         int `json:"losses" yaml:"losses"`
	GoalsFor       int `json:"goals_for" yaml:"goals_for"`
	GoalsAgainst   int `json:"goals_against" yaml:"goals_against"`
	GoalDifference int `json:"goal_difference" yaml:"goal_difference"`
}

// ComputeStatistics folds over every match given. Callers pass the whole
// filtered set, never a single page.
func ComputeStatistics(list []Match) Statistics {
	var s Statistics
	for _, m := range list {
		s.Played++
		s.GoalsFor += m.GoalsFor
		s.GoalsAgainst += m.GoalsAgainst
		switch m.Outcome() {
		case Win:
			s.Wins++
		case Loss:
			s.Losses++
		default:
			s.Draws++
		}
	}
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	return s
}
