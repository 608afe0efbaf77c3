package domain

import "fmt"

type NoProfileError struct {
	Query string
}

func (e NoProfileError) Error() string {
	if e.Query == "" {
		return "no saved profiles found"
	}
	return fmt.Sprintf("no profile matches %q", e.Query)
}

func IsNoProfileError(err error) bool {
	_, ok := err.(NoProfileError)
	return ok
}

type AmbiguousProfileError struct {
	Query   string
	Matches int
}

func (e AmbiguousProfileError) Error() string {
	return fmt.Sprintf("%d profiles match %q, use a longer prefix", e.Matches, e.Query)
}
