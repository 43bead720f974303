package game

import (
	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/rooms"
)

// Validate runs the move checks in order and returns the line the move would
// add. The first failing check wins.
func Validate(s State, m Move) (geom.Line, *MoveError) {
	if s.Status == Finished {
		return geom.Line{}, ErrGameFinished
	}

	if m.A == m.B {
		return geom.Line{}, ErrPointsEqual
	}

	size := s.Config.Size
	if !m.A.InBox(size) || !m.B.InBox(size) {
		return geom.Line{}, ErrLineOutOfBounds
	}

	if !m.A.IsLattice() || !m.B.IsLattice() {
		return geom.Line{}, ErrNotLattice
	}

	line, err := geom.CreateLine(m.A, m.B)
	if err != nil {
		return geom.Line{}, &MoveError{Code: CodeLineOutOfBounds, Message: err.Error()}
	}

	if !s.Config.Allows(line.Direction) {
		return geom.Line{}, ErrDirectionNotAllowed
	}

	if s.HasLine(line.Key()) {
		return geom.Line{}, ErrDuplicateLine
	}

	if geom.MatchesBoundary(line, size) {
		return geom.Line{}, ErrLineMatchesBoundary
	}

	return line, nil
}

// ApplyMove validates m against s and returns the next state. On rejection
// it returns s itself together with a *MoveError. s is never modified.
func ApplyMove(s State, m Move) (State, error) {
	line, moveErr := Validate(s, m)
	if moveErr != nil {
		return s, moveErr
	}

	if _, c := geom.ClipToBox(line, s.Config.Size); !c {
		return s, ErrLineMissesBoard
	}

	lines := make([]geom.Line, len(s.Lines), len(s.Lines)+1)
	copy(lines, s.Lines)
	lines = append(lines, line)

	next := s
	next.Lines = lines
	next.Rooms = rooms.CountRooms(s.Config.Size, lines)
	next.NowPlayer = s.NowPlayer.Next()
	next.MoveNumber = s.MoveNumber + 1

	if next.Rooms >= s.Config.TargetRooms {
		next.Status = Finished
		next.Loser = s.NowPlayer
	}

	return next, nil
}
