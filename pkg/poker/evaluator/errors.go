package evaluator

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned when an evaluation could not produce a rank
var ErrUnknown = errors.New("unknown evaluator error")

// ErrDuplicateCard is returned when the same card is given twice
var ErrDuplicateCard = errors.New("duplicate card")

// ErrInvalidCard is returned for a nil card or a card outside of a standard deck
var ErrInvalidCard = errors.New("invalid card")

// NotEnoughCardsError is returned when fewer cards than Minimum are given
type NotEnoughCardsError struct {
	Context string
	Minimum int
}

func (e *NotEnoughCardsError) Error() string {
	return fmt.Sprintf("%s did not have enough cards: need at least %d", e.Context, e.Minimum)
}

// TooManyCardsError is returned when more cards than Maximum are given
type TooManyCardsError struct {
	Context string
	Maximum int
}

func (e *TooManyCardsError) Error() string {
	return fmt.Sprintf("%s had too many cards: at most %d allowed", e.Context, e.Maximum)
}

// IsInputError returns true if err was caused by the cards given to an evaluator
// rather than by the evaluator itself
func IsInputError(err error) bool {
	var notEnough *NotEnoughCardsError
	var tooMany *TooManyCardsError

	return errors.As(err, &notEnough) ||
		errors.As(err, &tooMany) ||
		errors.Is(err, ErrDuplicateCard) ||
		errors.Is(err, ErrInvalidCard)
}

func unknownError(msg string) error {
	return fmt.Errorf("%w: %s", ErrUnknown, msg)
}
