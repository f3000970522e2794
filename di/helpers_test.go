package di_test

import "github.com/sghaida/envdi/observe"

// Logger is a stand-in service registered by type.
type Logger struct {
	ID    int
	Level string
}

// Sink is an interface used to check that interface and concrete identities differ.
type Sink interface {
	Write(msg string)
}

type memorySink struct {
	lines []string
}

func (m *memorySink) Write(msg string) { m.lines = append(m.lines, msg) }

// Settings is an observable object.
type Settings struct {
	observe.Subject

	Theme    string
	FontSize int
}

func (s *Settings) setTheme(v string) {
	s.Theme = v
	s.ObjectChanged()
}
