package models

// DeckOwner is the reserved owner id meaning a card is still in the undealt
// deck. Every game card is owned either by the deck or by exactly one player.
const DeckOwner uint = 0

// GameCard is one physical card instance inside a game. Position is the
// draw order while the card is deck-owned and NULL once it is dealt or drawn.
type GameCard struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	GameID   uint `gorm:"not null;index:idx_game_cards_owner" json:"game_id"`
	CardID   uint `gorm:"not null" json:"card_id"`
	OwnerID  uint `gorm:"not null;index:idx_game_cards_owner" json:"owner_id"`
	Position *int `json:"position"`
}
