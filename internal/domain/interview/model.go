package interview

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/football-sim/internal/domain/strength"
)

const (
	// BigMargin is the goal margin from which a win or loss counts as heavy.
	BigMargin = 3
	// DrawGap is the rating gap beyond which a draw counts as lopsided.
	DrawGap = 10.0
)

var ErrUnknownOption = errors.New("unknown interview option")

type Kind string

const (
	KindUpsetWin     Kind = "upset_win"
	KindBigWin       Kind = "big_win"
	KindWin          Kind = "win"
	KindUpsetLoss    Kind = "upset_loss"
	KindHeavyLoss    Kind = "heavy_loss"
	KindLoss         Kind = "loss"
	KindFavouredDraw Kind = "favoured_draw"
	KindUnderdogDraw Kind = "underdog_draw"
	KindEvenDraw     Kind = "even_draw"
)

type Option struct {
	Text   string `json:"text"`
	Morale int    `json:"morale"`
}

// Question is the post-match press question with its answers. Answers are
// numbered from 1.
type Question struct {
	Kind    Kind     `json:"kind"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

var questions = map[Kind]Question{
	KindUpsetWin: {Text: "You beat a side rated above you. How does it feel?", Options: []Option{
		{Text: "The players were incredible. They made the impossible possible!", Morale: 20},
		{Text: "Our plan and preparation were spot on. This was no accident.", Morale: 15},
		{Text: "A good result, but the opposition looked off their game.", Morale: 5},
	}},
	KindBigWin: {Text: "A big win, as expected. Your thoughts?", Options: []Option{
		{Text: "The players were outstanding. A complete performance!", Morale: 15},
		{Text: "We showed what we can do. We keep going like this.", Morale: 10},
		{Text: "The opposition was weak. That win doesn't mean much.", Morale: -5},
	}},
	KindWin: {Text: "How do you feel about the win?", Options: []Option{
		{Text: "A great game. I'm proud of every one of them!", Morale: 10},
		{Text: "The teamwork shone through. Let's keep it up!", Morale: 5},
		{Text: "Some mistakes hurt. We need more focus next time.", Morale: -5},
	}},
	KindUpsetLoss: {Text: "You were favourites and still lost. What went wrong?", Options: []Option{
		{Text: "That is unacceptable. We will take this match apart.", Morale: -20},
		{Text: "Disappointing, but that's football. We'll be sharper next time.", Morale: -10},
		{Text: "They played very well. There is something to learn here.", Morale: 0},
	}},
	KindHeavyLoss: {Text: "A heavy defeat against a tough side. Your reaction?", Options: []Option{
		{Text: "Really disappointing. We could have done much better.", Morale: -15},
		{Text: "They were much stronger. We have to learn and grow.", Morale: -5},
		{Text: "A hard game, but I recognise the effort. I expect better next time.", Morale: 5},
	}},
	KindLoss: {Text: "A narrow defeat. How do you see it?", Options: []Option{
		{Text: "Really disappointing. We could have done better.", Morale: -10},
		{Text: "Frustrating, but they were better. We'll prepare harder.", Morale: -3},
		{Text: "A hard game, but I recognise the effort.", Morale: 5},
	}},
	KindFavouredDraw: {Text: "Only a draw despite the stronger squad. Your view?", Options: []Option{
		{Text: "We should have won that. Very frustrating.", Morale: -8},
		{Text: "Their defence held firm. We need more creativity going forward.", Morale: -3},
		{Text: "A draw isn't bad. We keep improving.", Morale: 2},
	}},
	KindUnderdogDraw: {Text: "A draw against a much stronger side. How does it feel?", Options: []Option{
		{Text: "A result to be proud of. The players gave everything!", Morale: 12},
		{Text: "A good result that shows what we can become.", Morale: 8},
		{Text: "A shame we couldn't turn it into a win.", Morale: 3},
	}},
	KindEvenDraw: {Text: "A tight game ends level. Your thoughts?", Options: []Option{
		{Text: "I wanted more, but the players gave their all.", Morale: 3},
		{Text: "We could have won that one. A pity.", Morale: -5},
		{Text: "A draw is fine. On to the next game.", Morale: 1},
	}},
}

// Classify picks the interview case for the user's result. An upset takes
// precedence over the margin.
func Classify(userGoals, oppGoals int, cmp strength.Comparison) Kind {
	margin := abs(userGoals - oppGoals)
	switch {
	case userGoals > oppGoals:
		switch {
		case !cmp.UserAdvantage:
			return KindUpsetWin
		case margin >= BigMargin:
			return KindBigWin
		default:
			return KindWin
		}
	case userGoals < oppGoals:
		switch {
		case cmp.UserAdvantage:
			return KindUpsetLoss
		case margin >= BigMargin:
			return KindHeavyLoss
		default:
			return KindLoss
		}
	default:
		switch {
		case cmp.Gap > DrawGap && cmp.UserAdvantage:
			return KindFavouredDraw
		case cmp.Gap > DrawGap:
			return KindUnderdogDraw
		default:
			return KindEvenDraw
		}
	}
}

// For returns the question asked after a finished match.
func For(userGoals, oppGoals int, cmp strength.Comparison) Question {
	kind := Classify(userGoals, oppGoals, cmp)
	q := questions[kind]
	q.Kind = kind
	q.Options = append([]Option(nil), q.Options...)
	return q
}

// Answer resolves a 1-based answer number.
func (q Question) Answer(choice int) (Option, error) {
	if choice < 1 || choice > len(q.Options) {
		return Option{}, fmt.Errorf("%w: %d (want 1..%d)", ErrUnknownOption, choice, len(q.Options))
	}
	return q.Options[choice-1], nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
