// Package dnd tracks drag gestures over a cell grid.
//
// Components register drag sources and drop targets each frame. The manager
// turns Bubble Tea mouse events (or an explicit keyboard carry) into drag
// state, and reports a Drop when a gesture ends over a target that accepts the
// dragged kind. It never touches application state; the caller decides what a
// drop means.
package dnd

import tea "github.com/charmbracelet/bubbletea"

// Kind scopes which targets a source may be dropped on.
type Kind string

// Rect is a cell rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

type Source[T any] struct {
	ID      string
	Kind    Kind
	Rect    Rect
	Payload T
}

type Target struct {
	ID     string
	Accept Kind
	Rect   Rect
}

// Drop is a completed gesture: Payload landed on the target with ID Target.
type Drop[T any] struct {
	Target  string
	Payload T
}

type Manager[T any] struct {
	sources []Source[T]
	targets []Target

	active *Source[T] // payload captured when the drag began
	over   string
}

func New[T any]() *Manager[T] { return &Manager[T]{} }

// Register replaces the sources and targets for the current frame.
// An in-flight drag keeps the payload it started with.
func (m *Manager[T]) Register(sources []Source[T], targets []Target) {
	m.sources = sources
	m.targets = targets
	if m.active != nil && m.over != "" {
		if _, ok := m.target(m.over); !ok {
			m.over = ""
		}
	}
}

// HandleMouse feeds one mouse event. It returns a Drop when a left-button
// drag is released over an accepting target.
func (m *Manager[T]) HandleMouse(msg tea.MouseMsg) (Drop[T], bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Drop[T]{}, false
		}
		m.Cancel()
		for i := range m.sources {
			if m.sources[i].Rect.Contains(msg.X, msg.Y) {
				src := m.sources[i]
				m.active = &src
				m.over = m.acceptingAt(msg.X, msg.Y)
				break
			}
		}
	case tea.MouseActionMotion:
		if m.active != nil {
			m.over = m.acceptingAt(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if m.active == nil {
			return Drop[T]{}, false
		}
		m.over = m.acceptingAt(msg.X, msg.Y)
		return m.Commit()
	}
	return Drop[T]{}, false
}

// Begin starts a keyboard carry of the source with the given id.
func (m *Manager[T]) Begin(id string) bool {
	for _, s := range m.sources {
		if s.ID == id {
			src := s
			m.active = &src
			m.over = ""
			return true
		}
	}
	return false
}

// Hover points the current drag at a target. Targets that do not accept
// the dragged kind clear the hover.
func (m *Manager[T]) Hover(targetID string) {
	if m.active == nil {
		return
	}
	t, ok := m.target(targetID)
	if !ok || t.Accept != m.active.Kind {
		m.over = ""
		return
	}
	m.over = t.ID
}

// Commit ends the drag. It reports a Drop only when hovering an accepting target.
func (m *Manager[T]) Commit() (Drop[T], bool) {
	defer m.Cancel()
	if m.active == nil || m.over == "" {
		return Drop[T]{}, false
	}
	return Drop[T]{Target: m.over, Payload: m.active.Payload}, true
}

func (m *Manager[T]) Cancel() {
	m.active = nil
	m.over = ""
}

func (m *Manager[T]) Dragging() (Source[T], bool) {
	if m.active == nil {
		return Source[T]{}, false
	}
	return *m.active, true
}

func (m *Manager[T]) IsDragging(id string) bool {
	return m.active != nil && m.active.ID == id
}

func (m *Manager[T]) IsOver(targetID string) bool {
	return m.active != nil && m.over != "" && m.over == targetID
}

func (m *Manager[T]) target(id string) (Target, bool) {
	for _, t := range m.targets {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

func (m *Manager[T]) acceptingAt(x, y int) string {
	for _, t := range m.targets {
		if t.Rect.Contains(x, y) && t.Accept == m.active.Kind {
			return t.ID
		}
	}
	return ""
}
