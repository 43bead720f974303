package session

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HuXin0817/lattice-rooms/pkg/assess"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

type Option func(*Manager)

// WithDefaultConfig sets the config for sessions created without one.
func WithDefaultConfig(c game.Config, p game.Preset) Option {
	return func(m *Manager) {
		m.defaultConfig = c
		m.defaultPreset = p
	}
}

// WithSearchOptions applies to every session's searcher. Do not pass
// assess.WithRand here: sessions must not share a random source.
func WithSearchOptions(options ...assess.Option) Option {
	return func(m *Manager) {
		m.searchOptions = append(m.searchOptions, options...)
	}
}

// WithSeed makes session searchers reproducible: the n-th session is seeded
// with seed+n.
func WithSeed(seed int64) Option {
	return func(m *Manager) {
		m.seed = &seed
	}
}

// Manager holds sessions keyed by uuid.
type Manager struct {
	mu            sync.Mutex
	sessions      map[string]*Session
	defaultConfig game.Config
	defaultPreset game.Preset
	searchOptions []assess.Option
	seed          *int64
	created       atomic.Int64
}

func NewManager(options ...Option) *Manager {
	m := &Manager{
		sessions:      make(map[string]*Session),
		defaultConfig: game.DefaultConfig(),
		defaultPreset: game.OrthogonalDiagonals,
	}

	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Manager) newSearcher() *assess.Searcher {
	n := m.created.Add(1)
	options := append([]assess.Option(nil), m.searchOptions...)
	if m.seed != nil {
		options = append(options, assess.WithRand(rand.New(rand.NewSource(*m.seed+n))))
	}
	return assess.NewSearcher(options...)
}

// Create registers a new session. A nil config uses the manager default and
// its preset; an explicit config is recorded as custom unless its
// directions match a preset.
func (m *Manager) Create(config *game.Config) (*Session, error) {
	c, preset := m.defaultConfig, m.defaultPreset
	if config != nil {
		c = game.NewConfig(config.Size, config.TargetRooms, config.Directions)
		preset = matchPreset(c)
	}

	if err := ValidateConfig(c); err != nil {
		return nil, err
	}

	s := newSession(string(message.NewGameUid()), c, preset, m.newSearcher())

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	logx.Infof("session %s created: size %d, target %d, directions %s", s.id, c.Size, c.TargetRooms, game.FormatDirections(s.config.Directions))
	return s, nil
}

func matchPreset(c game.Config) game.Preset {
	canonical := game.New(c).Config.Directions
	for _, p := range []game.Preset{game.Orthogonal, game.OrthogonalDiagonals} {
		dirs, _ := game.PresetDirections(p)
		if game.FormatDirections(dirs) == game.FormatDirections(canonical) {
			return p
		}
	}
	return game.Custom
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, c := m.sessions[id]
	if !c {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, c := m.sessions[id]; !c {
		return ErrNotFound
	}
	delete(m.sessions, id)
	logx.Infof("session %s deleted", id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for at least idle and returns how many went.
// Session locks are never taken while the manager lock is held, so a session
// busy with a search does not block lookups of other sessions.
func (m *Manager) Sweep(idle time.Duration) (removed int) {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	now := time.Now()
	var expired []*Session
	for _, s := range sessions {
		if now.Sub(s.LastUpdated()) >= idle {
			expired = append(expired, s)
		}
	}

	if len(expired) == 0 {
		return
	}

	m.mu.Lock()
	for _, s := range expired {
		if m.sessions[s.id] == s {
			delete(m.sessions, s.id)
			removed++
		}
	}
	m.mu.Unlock()

	if removed > 0 {
		logx.Infof("swept %d idle sessions", removed)
	}
	return
}
