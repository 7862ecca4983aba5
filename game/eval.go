package game

// Feature weights of the positional heuristic.
const (
	CornerWeight   = 17
	MobilityWeight = 10
	PieceWeight    = 1
)

// EvaluatePosition tallies corner control, mobility and piece count for color
// and its opponent and returns the difference. Scores are only comparable
// between positions on boards of the same size.
func EvaluatePosition(b *Board, color Cell) int {
	opponent := color.Opposite()
	myScore, oppScore := 0, 0

	last := b.n - 1
	corners := [4][2]int{{0, 0}, {0, last}, {last, 0}, {last, last}}
	for _, corner := range corners {
		switch b.At(corner[0], corner[1]) {
		case color:
			myScore += CornerWeight
		case opponent:
			oppScore += CornerWeight
		}
	}

	myScore += MobilityWeight * countLegalMoves(b, color)
	oppScore += MobilityWeight * countLegalMoves(b, opponent)

	myScore += PieceWeight * b.count(color)
	oppScore += PieceWeight * b.count(opponent)

	return myScore - oppScore
}

var _ Evaluate = EvaluatePosition
