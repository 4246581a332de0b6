package tactic

import (
	"maps"
	"slices"
)

// Catalog is the static table of tactic profiles and team defaults.
type Catalog struct {
	profiles     map[string]Profile
	teamDefaults map[string]string
	neutral      Profile
}

func NewCatalog(profiles []Profile, teamDefaults map[string]string) *Catalog {
	c := &Catalog{
		profiles:     make(map[string]Profile, len(profiles)),
		teamDefaults: maps.Clone(teamDefaults),
	}
	for _, p := range profiles {
		c.profiles[p.Key] = p
	}
	if c.teamDefaults == nil {
		c.teamDefaults = map[string]string{}
	}

	c.neutral = Profile{Key: DefaultKey, Name: DefaultKey}
	if p, ok := c.profiles[DefaultKey]; ok {
		c.neutral = p
	}
	return c
}

// DefaultCatalog holds the nine built-in tactics and the default tactic of each
// seeded club.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultProfiles(), defaultTeamTactics())
}

// Lookup returns a profile by exact key.
func (c *Catalog) Lookup(key string) (Profile, bool) {
	p, ok := c.profiles[key]
	return p, ok
}

// Resolve returns the profile for key, or the neutral default profile when the
// key is unknown. The boolean reports whether the key was known.
func (c *Catalog) Resolve(key string) (Profile, bool) {
	if p, ok := c.profiles[key]; ok {
		return p, true
	}
	return c.neutral, false
}

func (c *Catalog) Keys() []string {
	return slices.Sorted(maps.Keys(c.profiles))
}

func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, 0, len(c.profiles))
	for _, key := range c.Keys() {
		out = append(out, c.profiles[key])
	}
	return out
}

// Effect is the morale effect of playing user against opponent: +15 when user
// is effective against opponent, -10 when ineffective, 0 otherwise.
func (c *Catalog) Effect(user, opponent string) int {
	p, ok := c.profiles[user]
	if !ok {
		return 0
	}
	switch {
	case p.beats(opponent):
		return EffectiveBonus
	case p.losesTo(opponent):
		return IneffectivePenalty
	default:
		return 0
	}
}

// Modifiers returns the event modifiers of a tactic. Unknown tactics have none.
func (c *Catalog) Modifiers(key string) Modifiers {
	return c.profiles[key].Modifiers
}

func (c *Catalog) Matchup(user, opponent string) Matchup {
	u, _ := c.Resolve(user)
	o, _ := c.Resolve(opponent)
	m := newMatchup(u, o, c.Effect(user, opponent))
	m.UserTactic, m.OpponentTactic = user, opponent
	return m
}

// Recommended lists the tactics that are effective against opponent.
func (c *Catalog) Recommended(opponent string) []string {
	out := make([]string, 0, 2)
	for _, key := range c.Keys() {
		if c.profiles[key].beats(opponent) {
			out = append(out, key)
		}
	}
	return out
}

// DefaultFor returns the configured tactic of a team, falling back to
// possession for unknown teams.
func (c *Catalog) DefaultFor(teamKey string) string {
	if key, ok := c.teamDefaults[teamKey]; ok {
		return key
	}
	return DefaultKey
}
