package season

import (
	"fmt"

	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
)

const DefaultFixtureCap = 36

// Tier is a placement band. MaxRank is inclusive; zero means "everyone else".
type Tier struct {
	Name    string `json:"name"`
	MaxRank int    `json:"max_rank"`
	Reward  int64  `json:"reward"`
}

const (
	TierChampion       = "champion"
	TierUpper          = "upper"
	TierMid            = "mid"
	TierRelegationZone = "relegation-zone"
)

// Config holds the season boundary constants.
type Config struct {
	FixtureCap int
	Tiers      []Tier
}

func DefaultConfig() Config {
	return Config{
		FixtureCap: DefaultFixtureCap,
		Tiers: []Tier{
			{Name: TierChampion, MaxRank: 1, Reward: 1500},
			{Name: TierUpper, MaxRank: 4, Reward: 1000},
			{Name: TierMid, MaxRank: 12, Reward: 500},
			{Name: TierRelegationZone, Reward: 200},
		},
	}
}

func (c Config) Validate() error {
	if c.FixtureCap < 1 {
		return fmt.Errorf("fixture cap must be >= 1")
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("at least one reward tier is required")
	}
	prev := 0
	for i, tier := range c.Tiers {
		last := i == len(c.Tiers)-1
		if tier.MaxRank == 0 && !last {
			return fmt.Errorf("tier %s: only the last tier may be open-ended", tier.Name)
		}
		if tier.MaxRank != 0 && tier.MaxRank <= prev {
			return fmt.Errorf("tier %s: max rank must increase", tier.Name)
		}
		if tier.Reward < 0 {
			return fmt.Errorf("tier %s: reward must be >= 0", tier.Name)
		}
		prev = tier.MaxRank
	}
	return nil
}

// TierFor maps a 1-based rank to its tier. Ranks beyond every bounded tier
// fall into the last tier.
func (c Config) TierFor(rank int) Tier {
	for _, tier := range c.Tiers {
		if tier.MaxRank == 0 || rank <= tier.MaxRank {
			return tier
		}
	}
	return c.Tiers[len(c.Tiers)-1]
}

// Settlement is the outcome of closing a season for the user's team.
type Settlement struct {
	Season    int                       `json:"season"`
	TeamKey   string                    `json:"team_key"`
	Rank      int                       `json:"rank"`
	Tier      Tier                      `json:"tier"`
	Reward    int64                     `json:"reward"`
	Standings []leaguestanding.Standing `json:"standings"`
}
