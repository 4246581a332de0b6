package match

// Record is the flat form of an Event for logs, streams and API payloads.
type Record struct {
	Kind      Kind   `json:"kind"`
	Minute    int    `json:"minute"`
	Text      string `json:"text"`
	Side      Side   `json:"side,omitempty"`
	TeamKey   string `json:"team_key,omitempty"`
	Scorer    string `json:"scorer,omitempty"`
	Assister  string `json:"assister,omitempty"`
	Tags      []Tag  `json:"tags,omitempty"`
	HomeScore *int   `json:"home_score,omitempty"`
	AwayScore *int   `json:"away_score,omitempty"`
}

func ToRecord(e Event) Record {
	r := Record{Kind: e.Kind(), Minute: e.Minute(), Text: e.Description()}
	switch ev := e.(type) {
	case Goal:
		r.Side, r.TeamKey = ev.Side, ev.TeamKey
		if ev.ScorerKnown {
			r.Scorer = ev.Scorer.Name
		}
		if ev.Assister != nil {
			r.Assister = ev.Assister.Name
		}
		r.Tags = ev.Tags
		r.HomeScore, r.AwayScore = &ev.HomeScore, &ev.AwayScore
	case Foul:
		r.Side, r.TeamKey = ev.Side, ev.TeamKey
	case Pass:
		r.Side, r.TeamKey = ev.Side, ev.TeamKey
	case ThrowIn:
		r.Side, r.TeamKey = ev.Side, ev.TeamKey
	case GoalKick:
		r.Side, r.TeamKey = ev.Side, ev.TeamKey
	case Corner:
		r.Side, r.TeamKey = ev.Side, ev.TeamKey
	case Upset:
		r.Side, r.TeamKey = ev.Side, ev.TeamKey
	case Final:
		r.HomeScore, r.AwayScore = &ev.HomeScore, &ev.AwayScore
	}
	return r
}

func ToRecords(events []Event) []Record {
	out := make([]Record, 0, len(events))
	for _, e := range events {
		out = append(out, ToRecord(e))
	}
	return out
}
