package models

import "errors"

// ErrMissingTeams is returned when an odds payload has no team information
var ErrMissingTeams = errors.New("odds payload missing teams")
