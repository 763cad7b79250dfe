// internal/player/mock.go
package player

// Mock is a test double for Player.
type Mock struct {
	state   State
	loaded  string
	playing string
	level   float64
	closed  bool

	loadErr error
	playErr error

	loadCalls []string
	playCalls int
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped, level: 1}
}

func (m *Mock) Load(path string) error {
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = path
	return nil
}

func (m *Mock) Play() error {
	m.playCalls++
	if m.loaded == "" {
		return ErrNothingLoaded
	}
	if m.playErr != nil {
		return m.playErr
	}
	m.playing = m.loaded
	m.loaded = ""
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.playing = ""
}

func (m *Mock) SetVolume(level float64) { m.level = level }

func (m *Mock) IsActive() bool { return m.state == Playing }

func (m *Mock) Close() {
	m.Stop()
	m.closed = true
}

// Test helpers

func (m *Mock) State() State { return m.state }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

// Playing returns the path of the audible stream, or "".
func (m *Mock) Playing() string { return m.playing }

func (m *Mock) Volume() float64 { return m.level }

func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
