package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/HuXin0817/lattice-rooms/pkg/assess"
	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	MinBoardSize = 2
	MaxBoardSize = 61
)

var (
	ErrNotFound      = errors.New("session not found")
	ErrInvalidConfig = errors.New("invalid game config")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrAIPlayerTurn  = errors.New("the side to move is controlled by the AI")
)

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	ID                   string         `json:"id"`
	Config               game.Config    `json:"config"`
	Preset               game.Preset    `json:"preset"`
	CustomDirectionsText string         `json:"customDirectionsText"`
	Game                 game.State     `json:"game"`
	Segments             []geom.Segment `json:"segments"`
	Intersections        []geom.Point   `json:"intersections"`
	Selected             *geom.Point    `json:"selected,omitempty"`
	Message              string         `json:"message,omitempty"`
	AIPlayers            [2]bool        `json:"aiPlayers"`
	Created              time.Time      `json:"created"`
	Updated              time.Time      `json:"updated"`
}

// Session is the mutable controller around an immutable game.State. It owns
// the UI selection, AI toggles and direction preset, and dispatches to the
// pure engine. Safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	id         string
	config     game.Config
	game       game.State
	selected   *geom.Point
	message    string
	preset     game.Preset
	customText string
	aiPlayers  [2]bool
	searcher   *assess.Searcher
	created    time.Time
	updated    time.Time
}

func newSession(id string, config game.Config, preset game.Preset, searcher *assess.Searcher) *Session {
	now := time.Now()
	g := game.New(config)
	return &Session{
		id:         id,
		config:     g.Config,
		game:       g,
		preset:     preset,
		customText: game.FormatDirections(g.Config.Directions),
		searcher:   searcher,
		created:    now,
		updated:    now,
	}
}

// ValidateConfig checks the bounds a session accepts.
func ValidateConfig(c game.Config) error {
	if c.Size < MinBoardSize || c.Size > MaxBoardSize {
		return fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidConfig, c.Size, MinBoardSize, MaxBoardSize)
	}
	if c.TargetRooms < 1 {
		return fmt.Errorf("%w: target rooms %d < 1", ErrInvalidConfig, c.TargetRooms)
	}
	if len(c.Directions) == 0 {
		return fmt.Errorf("%w: no directions", ErrInvalidConfig)
	}
	if _, err := geom.CanonicalDirections(c.Directions); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) LastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updated
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:                   s.id,
		Config:               s.config,
		Preset:               s.preset,
		CustomDirectionsText: s.customText,
		Game:                 s.game,
		Segments:             s.game.Segments(),
		Intersections:        s.game.Intersections(),
		Message:              s.message,
		AIPlayers:            s.aiPlayers,
		Created:              s.created,
		Updated:              s.updated,
	}
	if s.selected != nil {
		p := *s.selected
		snap.Selected = &p
	}
	return snap
}

func (s *Session) touchLocked() {
	s.updated = time.Now()
}

func (s *Session) resetLocked() {
	s.game = game.New(s.config)
	s.selected = nil
	s.message = ""
	s.touchLocked()
}

func (s *Session) aiToMoveLocked() bool {
	return s.aiPlayers[s.game.NowPlayer.Index()]
}

// SelectPoint marks p as the first endpoint. Selecting the current point
// again only clears the message.
func (s *Session) SelectPoint(p geom.Point) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil && *s.selected == p {
		s.message = ""
		return s.snapshotLocked()
	}

	s.selected = &p
	s.message = ""
	s.touchLocked()
	return s.snapshotLocked()
}

func (s *Session) ClearSelection() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil {
		s.selected = nil
		s.touchLocked()
	}
	return s.snapshotLocked()
}

// HandlePoint is a click on lattice point p: the first click selects, a click
// on the selected point deselects, and a second distinct point submits the
// move. A rejected move keeps the selection and returns the *game.MoveError.
func (s *Session) HandlePoint(p geom.Point) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aiToMoveLocked() {
		return s.snapshotLocked(), ErrAIPlayerTurn
	}

	switch {
	case s.selected == nil:
		s.selected = &p
		s.message = ""
	case *s.selected == p:
		s.selected = nil
		s.message = ""
	default:
		if err := s.playLocked(game.Move{A: *s.selected, B: p}); err != nil {
			return s.snapshotLocked(), err
		}
	}

	s.touchLocked()
	return s.snapshotLocked(), nil
}

// Play submits m directly, bypassing the selection.
func (s *Session) Play(m game.Move) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aiToMoveLocked() {
		return s.snapshotLocked(), ErrAIPlayerTurn
	}

	if err := s.playLocked(m); err != nil {
		return s.snapshotLocked(), err
	}

	s.touchLocked()
	return s.snapshotLocked(), nil
}

func (s *Session) playLocked(m game.Move) error {
	next, err := game.ApplyMove(s.game, m)
	if err != nil {
		var moveErr *game.MoveError
		if errors.As(err, &moveErr) {
			s.message = moveErr.Message
		} else {
			s.message = err.Error()
		}
		s.touchLocked()
		return err
	}

	s.game = next
	s.selected = nil
	s.message = ""
	if next.Finished() {
		logx.Infof("session %s finished after %d moves, %s loses with %d rooms", s.id, next.MoveNumber, next.Loser, next.Rooms)
	}
	return nil
}

func (s *Session) StartNewGame() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	return s.snapshotLocked()
}

func validateSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidConfig, size, MinBoardSize, MaxBoardSize)
	}
	return nil
}

func validateTarget(target int) error {
	if target < 1 {
		return fmt.Errorf("%w: target rooms %d < 1", ErrInvalidConfig, target)
	}
	return nil
}

// presetDirections returns nil for Custom, whose directions come from text.
func presetDirections(p game.Preset) ([]geom.Direction, error) {
	if p == game.Custom {
		return nil, nil
	}

	dirs, c := game.PresetDirections(p)
	if !c {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, p)
	}
	return dirs, nil
}

func (s *Session) updateTargetLocked(target int) {
	s.config.TargetRooms = target
	s.game = s.game.WithTargetRooms(target)
	s.touchLocked()
}

func (s *Session) updateSizeLocked(size int) {
	s.config.Size = size
	s.resetLocked()
}

func (s *Session) setPresetLocked(p game.Preset, dirs []geom.Direction) {
	s.preset = p
	if p == game.Custom {
		s.touchLocked()
		return
	}

	s.config.Directions = dirs
	s.resetLocked()
}

func (s *Session) setDirectionsLocked(text string, dirs []geom.Direction) {
	s.customText = text
	s.preset = game.Custom
	s.config.Directions = dirs
	s.resetLocked()
}

// UpdateTargetRooms changes the target without resetting the game. Targets
// below 1 are rejected. The current game finishes if it already has enough
// rooms.
func (s *Session) UpdateTargetRooms(target int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateTarget(target); err != nil {
		return s.snapshotLocked(), err
	}

	s.updateTargetLocked(target)
	return s.snapshotLocked(), nil
}

func (s *Session) UpdateBoardSize(size int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateSize(size); err != nil {
		return s.snapshotLocked(), err
	}

	s.updateSizeLocked(size)
	return s.snapshotLocked(), nil
}

// SetPreset switches direction preset. Custom only records the choice; the
// directions change once custom text parses.
func (s *Session) SetPreset(p game.Preset) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirs, err := presetDirections(p)
	if err != nil {
		return s.snapshotLocked(), err
	}

	s.setPresetLocked(p, dirs)
	return s.snapshotLocked(), nil
}

// SetCustomDirectionsText records text and switches to the custom preset.
// Text that does not parse is kept but leaves the game alone.
func (s *Session) SetCustomDirectionsText(text string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirs, err := game.ParseDirections(text)
	if err != nil {
		s.customText = text
		s.preset = game.Custom
		s.touchLocked()
		return s.snapshotLocked(), err
	}

	s.setDirectionsLocked(text, dirs)
	return s.snapshotLocked(), nil
}

// ConfigUpdate lists settings to change. Nil fields are left alone.
type ConfigUpdate struct {
	Preset      *game.Preset
	Directions  *string
	Size        *int
	TargetRooms *int
}

// Configure checks every field of u before applying any of them, so a
// rejected update leaves the session untouched. Fields apply in the order
// preset, directions, size, target; a size or target equal to the current
// one is skipped.
func (s *Session) Configure(u ConfigUpdate) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var presetDirs, textDirs []geom.Direction
	var err error
	if u.Preset != nil {
		if presetDirs, err = presetDirections(*u.Preset); err != nil {
			return s.snapshotLocked(), err
		}
	}
	if u.Directions != nil {
		if textDirs, err = game.ParseDirections(*u.Directions); err != nil {
			return s.snapshotLocked(), err
		}
	}
	if u.Size != nil {
		if err = validateSize(*u.Size); err != nil {
			return s.snapshotLocked(), err
		}
	}
	if u.TargetRooms != nil {
		if err = validateTarget(*u.TargetRooms); err != nil {
			return s.snapshotLocked(), err
		}
	}

	if u.Preset != nil {
		s.setPresetLocked(*u.Preset, presetDirs)
	}
	if u.Directions != nil {
		s.setDirectionsLocked(*u.Directions, textDirs)
	}
	if u.Size != nil && *u.Size != s.config.Size {
		s.updateSizeLocked(*u.Size)
	}
	if u.TargetRooms != nil && *u.TargetRooms != s.config.TargetRooms {
		s.updateTargetLocked(*u.TargetRooms)
	}
	return s.snapshotLocked(), nil
}

func (s *Session) SetAIPlayer(player game.Turn, enabled bool) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player != game.Player1 && player != game.Player2 {
		return s.snapshotLocked(), fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	if s.aiPlayers[player.Index()] == enabled {
		return s.snapshotLocked(), nil
	}

	s.aiPlayers[player.Index()] = enabled
	if enabled && s.game.NowPlayer == player {
		s.selected = nil
		s.message = ""
	}
	s.touchLocked()
	return s.snapshotLocked(), nil
}

// RequestAIMove lets the AI play when the game is on and the side to move is
// AI controlled. It reports whether the state changed. With no legal move the
// side to move forfeits.
func (s *Session) RequestAIMove() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Status != game.Playing || !s.aiToMoveLocked() {
		return s.snapshotLocked(), false
	}

	start := time.Now()
	d, c := s.searcher.ChooseBestMove(s.game)
	if !c {
		loser := s.game.NowPlayer
		s.game = s.game.Forfeit()
		s.selected = nil
		s.message = fmt.Sprintf("Player %d has no legal moves.", loser.Index()+1)
		logx.Infof("session %s: %s has no legal moves", s.id, loser)
		s.touchLocked()
		return s.snapshotLocked(), true
	}

	logx.Infof("session %s: %s plays %s (score %d) in %s", s.id, s.game.NowPlayer, d.Move, d.Score, time.Since(start))
	s.game = d.NextState
	s.selected = nil
	s.message = ""
	s.touchLocked()
	return s.snapshotLocked(), true
}
