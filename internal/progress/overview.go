package progress

// Badge is a milestone unlocked by overall challenge progress.
type Badge struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Earned    bool   `json:"earned"`
}

// TopicProgress is one category's bar in the overview.
type TopicProgress struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Percent    int    `json:"percent"`
}

// Overview aggregates every category into a single progress report.
type Overview struct {
	Topics  []TopicProgress `json:"topics"`
	Correct int             `json:"correct"`
	Total   int             `json:"total"`
	Percent int             `json:"percent"`
	Badges  []Badge         `json:"badges"`
}

var badgeLevels = []Badge{
	{Name: "Getting Started", Threshold: 0},
	{Name: "Budget Beginner", Threshold: 25},
	{Name: "Money Mover", Threshold: 50},
	{Name: "Savings Star", Threshold: 75},
	{Name: "GradGoals Master", Threshold: 100},
}

// Overview builds the per-topic bars, the overall percent and the badge list from the
// current progress table. Correct counts are clamped to each category's question count.
func (s *Session) Overview() Overview {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ov Overview
	for _, cat := range s.categories {
		total := cat.QuestionCount
		if total <= 0 {
			total = 1
		}
		correct := int(s.table[cat.ID].CorrectCount())
		if correct > total {
			correct = total
		}
		if correct < 0 {
			correct = 0
		}
		ov.Topics = append(ov.Topics, TopicProgress{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Correct:    correct,
			Total:      total,
			Percent:    int(roundHalfUp(float64(correct) / float64(total) * 100)),
		})
		ov.Correct += correct
		ov.Total += total
	}
	if ov.Total > 0 {
		ov.Percent = int(roundHalfUp(float64(ov.Correct) / float64(ov.Total) * 100))
	}

	ov.Badges = make([]Badge, len(badgeLevels))
	for i, b := range badgeLevels {
		b.Earned = ov.Percent >= b.Threshold
		ov.Badges[i] = b
	}
	return ov
}

// EarnedBadges returns the names of the badges unlocked in ov.
func (ov Overview) EarnedBadges() []string {
	var names []string
	for _, b := range ov.Badges {
		if b.Earned {
			names = append(names, b.Name)
		}
	}
	return names
}
