package outcome

// Pairing is one fixture between two non-participating teams.
type Pairing struct {
	Team1 string
	Team2 string
}

// PairFixtures pairs the remaining teams by adjacency after removing the
// excluded keys. An odd team out is skipped.
func PairFixtures(keys []string, exclude ...string) []Pairing {
	skip := make(map[string]struct{}, len(exclude))
	for _, key := range exclude {
		skip[key] = struct{}{}
	}

	remaining := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := skip[key]; ok {
			continue
		}
		remaining = append(remaining, key)
	}

	out := make([]Pairing, 0, len(remaining)/2)
	for i := 0; i+1 < len(remaining); i += 2 {
		out = append(out, Pairing{Team1: remaining[i], Team2: remaining[i+1]})
	}
	return out
}
