package models

// Card is one row of the fixed 52-card catalog. The catalog is seeded once
// at migrate time and never written afterwards.
type Card struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Rank      string `gorm:"size:2;not null" json:"rank"`
	Suit      string `gorm:"size:8;not null" json:"suit"`
	SortOrder int    `gorm:"not null" json:"sort_order"`
}

// Ranks in ascending sort order. Suits in the order used for display ties.
var (
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	Suits = []string{"hearts", "diamonds", "clubs", "spades"}
)

// ValidRank reports whether rank is one of the 13 catalog ranks.
func ValidRank(rank string) bool {
	for _, r := range Ranks {
		if r == rank {
			return true
		}
	}
	return false
}

// CatalogCards builds the full 52-card catalog. Sort order groups by rank so
// a hand sorted by it keeps same-rank cards together.
func CatalogCards() []Card {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for ri, rank := range Ranks {
		for si, suit := range Suits {
			cards = append(cards, Card{
				Rank:      rank,
				Suit:      suit,
				SortOrder: ri*len(Suits) + si,
			})
		}
	}
	return cards
}
