package engine

// Engine plays one game to completion.
type Engine interface {
	// Run plays until neither side can move or a player forfeits with an invalid move
	Run() (Result, error)
}
