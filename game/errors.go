package game

import "errors"

var (
	// ErrInsufficientPlayers means a game start was attempted with fewer
	// than two roster entries. Nothing is mutated.
	ErrInsufficientPlayers = errors.New("at least 2 players are required to start the game")

	// ErrGameNotLobby means a lobby-only operation hit a game that has
	// already started.
	ErrGameNotLobby = errors.New("game is not in the lobby state")

	// ErrGameNotActive means a gameplay operation hit a game that has not
	// started yet.
	ErrGameNotActive = errors.New("game is not active")

	// ErrAlreadyJoined means the user is already on the game's roster.
	ErrAlreadyJoined = errors.New("already in this game")

	// ErrGameFull means the roster has reached max_players.
	ErrGameFull = errors.New("game is full")
)
