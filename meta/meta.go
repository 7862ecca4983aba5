// meta/meta.go
package meta

// SearchDepth is the number of plies the computer player looks ahead.
const SearchDepth = 5

// MaxBoardSize is the largest board the one-letter-per-coordinate encoding can address.
const MaxBoardSize = 26

// DefaultBoardSize is used by the match runner when no size is configured.
const DefaultBoardSize = 8

// DefaultGames is the number of games per match up.
const DefaultGames = 2
