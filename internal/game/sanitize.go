package game

import "github.com/sunandbean/cashflow-server-go/internal/game/cards"

// Sanitize returns a copy of the state safe to send off the authoritative
// boundary: every card in every draw and discard pile is replaced by a blank
// placeholder of the same position, so clients can render pile sizes without
// learning deck order. The shuffle seed and counter are dropped too, since
// deck order is derivable from them. The drawn active card and any pending
// deal terms are public and stay. The transform is idempotent.
func Sanitize(state *GameState) *GameState {
	next := state.Clone()
	next.SmallDeals = blankDeck(next.SmallDeals)
	next.BigDeals = blankDeck(next.BigDeals)
	next.Markets = blankDeck(next.Markets)
	next.Doodads = blankDeck(next.Doodads)
	next.Seed = 0
	next.ShuffleCount = 0
	return next
}

func blankDeck(d cards.Deck) cards.Deck {
	return cards.Deck{
		Draw:    make([]cards.Card, len(d.Draw)),
		Discard: make([]cards.Card, len(d.Discard)),
	}
}
