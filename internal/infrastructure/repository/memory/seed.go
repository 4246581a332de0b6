package memory

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

// Club is a seeded team. Base is the rating its best starters sit around.
type Club struct {
	Key  string
	Name string
	Base float64
}

func SeedClubs() []Club {
	return []Club{
		{Key: "manCity", Name: "Manchester City", Base: 88},
		{Key: "realMadrid", Name: "Real Madrid", Base: 88},
		{Key: "bayern", Name: "Bayern Munich", Base: 87},
		{Key: "liverpool", Name: "Liverpool", Base: 87},
		{Key: "psg", Name: "Paris Saint-Germain", Base: 86},
		{Key: "barcelona", Name: "Barcelona", Base: 86},
		{Key: "arsenal", Name: "Arsenal", Base: 85},
		{Key: "inter", Name: "Inter", Base: 85},
		{Key: "leverkusen", Name: "Bayer Leverkusen", Base: 84},
		{Key: "atMadrid", Name: "Atletico Madrid", Base: 84},
		{Key: "acMilan", Name: "AC Milan", Base: 83},
		{Key: "napoli", Name: "Napoli", Base: 83},
		{Key: "dortmund", Name: "Borussia Dortmund", Base: 82},
		{Key: "chelsea", Name: "Chelsea", Base: 82},
		{Key: "tottenham", Name: "Tottenham Hotspur", Base: 81},
		{Key: "manUnited", Name: "Manchester United", Base: 81},
		{Key: "newCastle", Name: "Newcastle United", Base: 80},
		{Key: "asRoma", Name: "AS Roma", Base: 79},
		{Key: "seryun", Name: "Seryun FC", Base: 70},
	}
}

var squadShape = []struct {
	position player.Position
	count    int
}{
	{player.PositionGoalkeeper, 2},
	{player.PositionDefender, 6},
	{player.PositionMidfielder, 6},
	{player.PositionForward, 4},
}

var (
	firstNames = []string{
		"Alex", "Bruno", "Carlos", "Dani", "Emil", "Felix", "Gabriel", "Hugo", "Ivan", "Jonas",
		"Kai", "Luca", "Marco", "Nico", "Oscar", "Pablo", "Rafael", "Sami", "Theo", "Victor",
	}
	lastNames = []string{
		"Almeida", "Berg", "Costa", "Dufour", "Eriksen", "Ferrari", "Garcia", "Hansen", "Ibarra", "Jensen",
		"Keller", "Lopez", "Moreau", "Novak", "Ortega", "Petrov", "Rossi", "Silva", "Tanaka", "Weber",
	}
)

// SeedPlayers generates the rosters of every seeded club. Generation is
// deterministic per club key, so restarts reproduce the same squads.
func SeedPlayers() []player.Player {
	clubs := SeedClubs()
	out := make([]player.Player, 0, len(clubs)*18)
	for _, c := range clubs {
		out = append(out, generateRoster(c)...)
	}
	return out
}

func generateRoster(c Club) []player.Player {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.Key))
	src := random.NewSeeded(h.Sum64() | 1)

	used := make(map[string]struct{})
	var out []player.Player
	for _, slot := range squadShape {
		for i := 0; i < slot.count; i++ {
			// Starters sit near the base, depth players drop off.
			drop := float64(i) * 1.5
			rating := c.Base - drop + random.Between(src, -2, 2)
			out = append(out, player.Player{
				Name:     uniqueName(src, used),
				TeamKey:  c.Key,
				Position: slot.position,
				Rating:   math.Round(rating*10) / 10,
			})
		}
	}
	return out
}

func uniqueName(src random.Source, used map[string]struct{}) string {
	for attempt := 0; ; attempt++ {
		name := firstNames[src.IntN(len(firstNames))] + " " + lastNames[src.IntN(len(lastNames))]
		if attempt > 20 {
			name = fmt.Sprintf("%s %d", name, attempt)
		}
		if _, dup := used[name]; !dup {
			used[name] = struct{}{}
			return name
		}
	}
}
