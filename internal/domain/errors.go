package domain

import (
	"errors"
)

const (
	MsgInvalidDraftID = "Invalid draft ID. Please enter a valid numeric draft ID."
	MsgFetchFailed    = "Failed to fetch draft picks from Sleeper API."
	MsgNoDraftPicks   = "No draft picks found!"
	MsgNoKickers      = "No kickers found in the draft picks!"
	UnknownManager    = "Unknown Manager"
	UnknownUsername   = "Unknown Username"
)

var ErrInvalidDraftID = errors.New(MsgInvalidDraftID)

// FetchError reports that draft picks could not be obtained. Message is
// user-facing; Err carries the underlying cause, if any.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FetchError) Unwrap() error { return e.Err }

type DeriveError struct {
	Message string
}

func (e *DeriveError) Error() string { return e.Message }
