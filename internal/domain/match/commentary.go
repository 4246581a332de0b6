package match

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

var (
	foulLines = []string{
		"%s commit a cynical foul to stop the break.",
		"Free kick given against %s after a late challenge.",
		"The referee blows for a foul by %s.",
	}
	passLines = []string{
		"%s knock it around patiently in midfield.",
		"Neat one-two from %s down the flank.",
		"%s switch the play with a raking diagonal.",
		"%s keep possession under pressure.",
	}
	throwInLines = []string{
		"Throw-in to %s deep in their own half.",
		"%s take a quick throw down the line.",
	}
	goalKickLines = []string{
		"Goal kick for %s.",
		"%s restart from the six-yard box.",
	}
	cornerLines = []string{
		"Corner to %s, bodies pile into the box.",
		"%s win a corner off a deflected cross.",
	}
	upsetLines = []string{
		"%s are pinning the favourites back!",
		"Nobody expected this pressure from %s.",
	}
	finishLines = []string{
		"a thunderous strike into the top corner",
		"a cool finish past the keeper",
		"a glancing header inside the post",
		"a low drive through a crowd of legs",
	}
	assistLines = map[player.Position]string{
		player.PositionForward:    "after a clever lay-off from %s",
		player.PositionMidfielder: "from a defence-splitting pass by %s",
		player.PositionDefender:   "from a pinpoint cross by %s",
	}
	tagLines = map[Tag]string{
		TagFirstGoal:      "The deadlock is broken.",
		TagAddedTimeDrama: "Drama at the death!",
		TagLateGoal:       "A late twist.",
		TagEarlyGoal:      "What a start!",
		TagEqualizer:      "All square again.",
		TagComeback:       "The comeback is on!",
		TagLeadReversal:   "They have turned it around!",
	}
)

func (m *Match) pick(lines []string, team string) string {
	return fmt.Sprintf(lines[m.src.IntN(len(lines))], team)
}

func goalText(src random.Source, g Goal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "GOAL for %s! %s scores with %s", g.TeamKey, g.Scorer.Name, finishLines[src.IntN(len(finishLines))])
	if g.Assister != nil {
		if line, ok := assistLines[g.Assister.Position]; ok {
			b.WriteString(" ")
			fmt.Fprintf(&b, line, g.Assister.Name)
		}
	}
	fmt.Fprintf(&b, ". %d-%d.", g.HomeScore, g.AwayScore)
	for _, tag := range g.Tags {
		b.WriteString(" ")
		b.WriteString(tagLines[tag])
	}
	return b.String()
}

func finalText(home, away string, homeScore, awayScore int) string {
	return fmt.Sprintf("Full time: %s %d-%d %s.", home, homeScore, awayScore, away)
}
