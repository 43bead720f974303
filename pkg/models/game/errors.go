package game

type ErrorCode string

const (
	CodeGameFinished        ErrorCode = "game_finished"
	CodePointsEqual         ErrorCode = "points_equal"
	CodeLineOutOfBounds     ErrorCode = "line_out_of_bounds"
	CodeDirectionNotAllowed ErrorCode = "direction_not_allowed"
	CodeDuplicateLine       ErrorCode = "duplicate_line"
	CodeLineMatchesBoundary ErrorCode = "line_matches_boundary"
)

// MoveError is a rejected move. errors.Is matches on Code alone, so the
// sentinels below compare equal to any message with the same code.
type MoveError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *MoveError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *MoveError) Is(target error) bool {
	t, ok := target.(*MoveError)
	return ok && t.Code == e.Code
}

var (
	ErrGameFinished        = &MoveError{CodeGameFinished, "The game is already finished."}
	ErrPointsEqual         = &MoveError{CodePointsEqual, "Select two distinct lattice points."}
	ErrLineOutOfBounds     = &MoveError{CodeLineOutOfBounds, "Points must lie within the board."}
	ErrNotLattice          = &MoveError{CodeLineOutOfBounds, "Points must be lattice coordinates."}
	ErrLineMissesBoard     = &MoveError{CodeLineOutOfBounds, "The proposed line does not intersect the board."}
	ErrDirectionNotAllowed = &MoveError{CodeDirectionNotAllowed, "That direction is not allowed in the current ruleset."}
	ErrDuplicateLine       = &MoveError{CodeDuplicateLine, "That line already exists on the board."}
	ErrLineMatchesBoundary = &MoveError{CodeLineMatchesBoundary, "Lines must not coincide with the board boundary."}
)
