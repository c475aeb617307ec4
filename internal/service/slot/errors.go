package slot

import "errors"

var (
	ErrAlreadySpinning     = errors.New("slot machine is already spinning")
	ErrNotSpinning         = errors.New("slot machine is not spinning")
	ErrInsufficientCredits = errors.New("not enough credits for bet")
	ErrInvalidBet          = errors.New("bet must be positive and not exceed credits")
)
