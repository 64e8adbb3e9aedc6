package mastery

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork is matched by every failure to obtain a page: connection,
	// DNS, timeout or an HTTP error status.
	ErrNetwork = errors.New("network failure")
	// ErrParse is matched by every failure to turn a page into a Table.
	ErrParse = errors.New("parse failure")
)

type NetworkError struct {
	Player string
	URL    string
	// Status is 0 when no response was received.
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %q: %s: status %d", e.Player, e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %q: %s: %v", e.Player, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNetwork}
	}
	return []error{ErrNetwork, e.Err}
}

type ParseError struct {
	Player string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Player == "" {
		return "parse mastery table: " + msg
	}
	return fmt.Sprintf("parse mastery table of %q: %s", e.Player, msg)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
