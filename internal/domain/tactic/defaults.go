package tactic

func defaultProfiles() []Profile {
	return []Profile{
		{
			Key:                Gegenpress,
			Name:               "Gegenpress",
			Description:        "High-intensity pressing immediately after losing the ball.",
			EffectiveAgainst:   []string{TwoLine, Possession},
			IneffectiveAgainst: []string{LongBall, Catenaccio},
			Modifiers:          Modifiers{GoalChance: 0.01, FoulChance: 0.01, Possession: -5, PassAccuracy: -2},
		},
		{
			Key:                TwoLine,
			Name:               "Two Line Defense",
			Description:        "Two compact banks of four protecting the box.",
			EffectiveAgainst:   []string{LongBall, ParkBus},
			IneffectiveAgainst: []string{Gegenpress, TotalFootball},
			Modifiers:          Modifiers{GoalChance: -0.005, FoulChance: 0.005, Possession: -10, PassAccuracy: 5},
		},
		{
			Key:                LaVolpiana,
			Name:               "La Volpiana",
			Description:        "Build-up through a dropping midfielder between the centre-backs.",
			EffectiveAgainst:   []string{Possession, TikiTaka},
			IneffectiveAgainst: []string{Catenaccio, LongBall},
			Modifiers:          Modifiers{GoalChance: 0.005, FoulChance: 0, Possession: 5, PassAccuracy: 3},
		},
		{
			Key:                LongBall,
			Name:               "Long Ball",
			Description:        "Direct play skipping midfield.",
			EffectiveAgainst:   []string{ParkBus, Catenaccio},
			IneffectiveAgainst: []string{Gegenpress, TikiTaka},
			Modifiers:          Modifiers{GoalChance: 0.008, FoulChance: -0.005, Possession: -15, PassAccuracy: -5},
		},
		{
			Key:                Possession,
			Name:               "Possession",
			Description:        "Keep the ball and wait for openings.",
			EffectiveAgainst:   []string{TikiTaka, LaVolpiana},
			IneffectiveAgainst: []string{LongBall, Gegenpress},
			Modifiers:          Modifiers{GoalChance: 0, FoulChance: -0.01, Possession: 15, PassAccuracy: 8},
		},
		{
			Key:                ParkBus,
			Name:               "Park the Bus",
			Description:        "Everyone behind the ball.",
			EffectiveAgainst:   []string{Catenaccio, TwoLine},
			IneffectiveAgainst: []string{Gegenpress, TotalFootball},
			Modifiers:          Modifiers{GoalChance: -0.01, FoulChance: 0.015, Possession: -20, PassAccuracy: -3},
		},
		{
			Key:                Catenaccio,
			Name:               "Catenaccio",
			Description:        "Sweeper-led man marking with quick counters.",
			EffectiveAgainst:   []string{TwoLine, ParkBus},
			IneffectiveAgainst: []string{Possession, TotalFootball},
			Modifiers:          Modifiers{GoalChance: -0.008, FoulChance: 0.01, Possession: -12, PassAccuracy: 2},
		},
		{
			Key:                TotalFootball,
			Name:               "Total Football",
			Description:        "Fluid positional interchange across the pitch.",
			EffectiveAgainst:   []string{TikiTaka, Gegenpress},
			IneffectiveAgainst: []string{TwoLine, Catenaccio},
			Modifiers:          Modifiers{GoalChance: 0.01, FoulChance: 0, Possession: 8, PassAccuracy: 5},
		},
		{
			Key:                TikiTaka,
			Name:               "Tiki-Taka",
			Description:        "Short passing triangles and constant movement.",
			EffectiveAgainst:   []string{Possession, LaVolpiana},
			IneffectiveAgainst: []string{LongBall, ParkBus},
			Modifiers:          Modifiers{GoalChance: 0.005, FoulChance: -0.01, Possession: 20, PassAccuracy: 10},
		},
	}
}

func defaultTeamTactics() map[string]string {
	return map[string]string{
		"manCity":    TikiTaka,
		"liverpool":  Gegenpress,
		"manUnited":  Possession,
		"arsenal":    TwoLine,
		"chelsea":    LongBall,
		"tottenham":  Gegenpress,
		"realMadrid": Possession,
		"barcelona":  TotalFootball,
		"acMilan":    Gegenpress,
		"inter":      TotalFootball,
		"bayern":     TikiTaka,
		"psg":        Possession,
		"leverkusen": LongBall,
		"dortmund":   Gegenpress,
		"newCastle":  LaVolpiana,
		"asRoma":     LongBall,
		"atMadrid":   Catenaccio,
		"napoli":     ParkBus,
		"seryun":     LongBall,
	}
}
