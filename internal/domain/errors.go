package domain

import "errors"

var ErrNoObservations = errors.New("no conversion rate data present")
