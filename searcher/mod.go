package searcher

import "errors"

// Score bounds of the search window. Evaluations stay well inside them for
// every board the letter encoding can address.
const (
	MinScore = -99999
	MaxScore = 99999
)

var ErrNoMove = errors.New("no legal move available")
