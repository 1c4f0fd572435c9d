package game

import "errors"

var (
	ErrEmptyDeck       = errors.New("deck is empty")
	ErrInvalidHand     = errors.New("hand needs at least two cards")
	ErrRoundOver       = errors.New("round already settled")
	ErrCorruptSnapshot = errors.New("corrupt round snapshot")
)
