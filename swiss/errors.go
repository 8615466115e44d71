package swiss

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlayer  = errors.New("match references unknown player")
	ErrOddPlayerCount = errors.New("swiss pairing requires an even number of players")
)

// UnknownPlayerError means the snapshot handed to the engine is not
// referentially consistent.
type UnknownPlayerError struct {
	MatchIndex int
	PlayerID   int
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("%s: player %d (match #%d)", ErrUnknownPlayer, e.PlayerID, e.MatchIndex)
}

func (e *UnknownPlayerError) Is(target error) bool {
	return target == ErrUnknownPlayer
}

type OddPlayerCountError struct {
	Count int
}

func (e *OddPlayerCountError) Error() string {
	return fmt.Sprintf("%s: got %d", ErrOddPlayerCount, e.Count)
}

func (e *OddPlayerCountError) Is(target error) bool {
	return target == ErrOddPlayerCount
}
