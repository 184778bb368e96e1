package game

import (
	"fmt"
	"sort"
	"strings"
)

type Suit int

const (
	Clubs Suit = iota // C
	Diamonds          // D
	Hearts            // H
	Spades            // S
)

// Suits in deck construction order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// suitSortOrder ranks suits for hand sorting and complement enumeration:
// Hearts first, then Clubs, Diamonds, Spades.
var suitSortOrder = [...]int{Clubs: 1, Diamonds: 2, Hearts: 0, Spades: 3}

var sortedSuits = []Suit{Hearts, Clubs, Diamonds, Spades}

var suitSymbols = [...]string{Clubs: "C", Diamonds: "D", Hearts: "H", Spades: "S"}

type Rank int

const (
	MinRank Rank = 2
	Jack    Rank = 11
	Queen   Rank = 12
	King    Rank = 13
	Ace     Rank = 14
	MaxRank Rank = Ace
)

var rankSymbols = []string{"", "", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Card is an immutable value type; two cards are equal iff suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

var (
	TwoOfClubs    = Card{Suit: Clubs, Rank: 2}
	QueenOfSpades = Card{Suit: Spades, Rank: Queen}
)

func (c Card) IsHearts() bool {
	return c.Suit == Hearts
}

// Score is the penalty value of a single card: 1 for any Heart, 13 for the
// Queen of Spades, 0 otherwise.
func (c Card) Score() int {
	switch {
	case c.IsHearts():
		return 1
	case c == QueenOfSpades:
		return 13
	default:
		return 0
	}
}

func (c Card) String() string {
	return rankSymbols[c.Rank] + suitSymbols[c.Suit]
}

// Less orders cards by suit (Hearts, Clubs, Diamonds, Spades) then rank.
func Less(a, b Card) bool {
	if a.Suit != b.Suit {
		return suitSortOrder[a.Suit] < suitSortOrder[b.Suit]
	}
	return a.Rank < b.Rank
}

// SortCards returns a sorted copy; the input is left untouched.
func SortCards(cards []Card) []Card {
	sorted := append([]Card(nil), cards...)
	sort.Slice(sorted, func(i, j int) bool { return Less(sorted[i], sorted[j]) })
	return sorted
}

// ParseCard parses a symbol like "2C", "10D" or "QH".
func ParseCard(symbol string) (Card, error) {
	if len(symbol) < 2 {
		return Card{}, fmt.Errorf("invalid card symbol %q", symbol)
	}

	suitSymbol := symbol[len(symbol)-1:]
	suit := Suit(-1)
	for _, s := range Suits {
		if suitSymbols[s] == suitSymbol {
			suit = s
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("invalid suit in card symbol %q", symbol)
	}

	rankSymbol := symbol[:len(symbol)-1]
	for rank := MinRank; rank <= MaxRank; rank++ {
		if rankSymbols[rank] == rankSymbol {
			return Card{Suit: suit, Rank: rank}, nil
		}
	}
	return Card{}, fmt.Errorf("invalid rank in card symbol %q", symbol)
}

// ParseCards parses a space-separated list of card symbols.
func ParseCards(list string) ([]Card, error) {
	var cards []Card
	for _, symbol := range strings.Fields(list) {
		card, err := ParseCard(symbol)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// CardList formats cards as a space-separated list of symbols.
func CardList(cards []Card) string {
	symbols := make([]string, len(cards))
	for i, card := range cards {
		symbols[i] = card.String()
	}
	return strings.Join(symbols, " ")
}
