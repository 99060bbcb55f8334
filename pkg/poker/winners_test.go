package poker

import (
	"math/rand"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"pokersim/pkg/deck"
)

func TestResolveWinners_SplitPot(t *testing.T) {
	a := assert.New(t)

	community := deck.CardsFromString("As,Ks,Qs,Js,Ts")
	players := []deck.Hand{
		deck.CardsFromString("2s,3h"),
		deck.CardsFromString("2h,4d"),
	}

	winners, err := ResolveWinners(players, community)
	a.NoError(err)
	a.Equal(2, len(winners))

	a.Equal(0, winners[0].Seat)
	a.Equal("2s,3h", winners[0].Hole.String())
	a.Equal(9000000, winners[0].Score)

	a.Equal(1, winners[1].Seat)
	a.Equal("2h,4d", winners[1].Hole.String())
	a.Equal(9000000, winners[1].Score)
}

func TestResolveWinners_SingleWinner(t *testing.T) {
	a := assert.New(t)

	community := deck.CardsFromString("2c,7d,9h,Js,Kc")
	players := []deck.Hand{
		deck.CardsFromString("Ah,3d"),
		deck.CardsFromString("Kd,Qd"),
		deck.CardsFromString("7c,7s"),
		deck.CardsFromString("Ad,Qh"),
	}

	winners, err := ResolveWinners(players, community)
	a.NoError(err)
	a.Equal(1, len(winners))
	a.Equal(2, winners[0].Seat)
	a.Equal(ThreeOfAKind, winners[0].Category())

	tiers, err := Rank(players, community)
	a.NoError(err)
	a.Equal("2|1|3|0", tiersToString(tiers))
}

func TestResolveWinners_KickerSplits(t *testing.T) {
	// both players play the board's two pair with an ace kicker
	community := deck.CardsFromString("Kc,Kd,8h,8s,4c")
	players := []deck.Hand{
		deck.CardsFromString("Ah,2d"),
		deck.CardsFromString("As,3d"),
		deck.CardsFromString("Qh,Jd"),
	}

	winners, err := ResolveWinners(players, community)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(winners))
	assert.Equal(t, 0, winners[0].Seat)
	assert.Equal(t, 1, winners[1].Seat)
	assert.Equal(t, TwoPair, winners[0].Category())
}

func TestResolveWinners_Errors(t *testing.T) {
	a := assert.New(t)

	_, err := ResolveWinners(nil, deck.CardsFromString("As,Ks,Qs,Js,Ts"))
	a.ErrorIs(err, ErrNoPlayers)

	_, err = ResolveWinners([]deck.Hand{deck.CardsFromString("2c"), deck.CardsFromString("3c")}, deck.CardsFromString("As,Ks,Qs"))
	a.ErrorIs(err, ErrInsufficientCards)
	a.Contains(err.Error(), "seat 0")

	_, err = ResolveWinners([]deck.Hand{deck.CardsFromString("2c,3c"), deck.CardsFromString("As,4c")}, deck.CardsFromString("As,Ks,Qs,Js,Ts"))
	a.ErrorIs(err, ErrDuplicateCard)
	a.Contains(err.Error(), "seat 1")

	// four hole cards and a single community card are still five cards
	winners, err := ResolveWinners([]deck.Hand{deck.CardsFromString("2c,3c,4c,5c")}, deck.CardsFromString("6c"))
	a.NoError(err)
	a.Equal(StraightFlush, winners[0].Category())
}

func toOracleCard(t *testing.T, c deck.Card) ph.Card {
	t.Helper()

	var suit ph.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = ph.Club
	case deck.Diamonds:
		suit = ph.Diamond
	case deck.Hearts:
		suit = ph.Heart
	case deck.Spades:
		suit = ph.Spade
	}

	rank := ph.Rank(c.AceLowRank())
	card, err := ph.MakeCard(suit, rank)
	if err != nil {
		t.Fatalf("could not convert %s: %v", c, err)
	}

	return card
}

// compares winner resolution against an independent seven-card evaluator
func TestResolveWinners_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cards := deck.All()
	const nPlayers = 6

	for i := 0; i < 500; i++ {
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})

		community := cards[0:5].Clone()
		players := make([]deck.Hand, nPlayers)
		for p := range players {
			players[p] = cards[5+p*2 : 7+p*2].Clone()
		}

		winners, err := ResolveWinners(players, community)
		if !assert.NoError(t, err) {
			return
		}

		oracleScores := make([]int16, nPlayers)
		var oracleBest int16
		for p, hole := range players {
			var seven [7]ph.Card
			for j, c := range append(hole.Clone(), community...) {
				seven[j] = toOracleCard(t, c)
			}

			oracleScores[p] = ph.Eval7(&seven)
			if p == 0 || oracleScores[p] > oracleBest {
				oracleBest = oracleScores[p]
			}
		}

		expected := make([]int, 0)
		for p, s := range oracleScores {
			if s == oracleBest {
				expected = append(expected, p)
			}
		}

		got := make([]int, len(winners))
		for j, w := range winners {
			got[j] = w.Seat
		}

		assert.Equal(t, expected, got, "board %s", community.String())
	}
}
