// Package engine generates backlog tasks and spawns follow-ups when tasks are
// completed.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/matcher"
	"github.com/pablasso/backlog/internal/placeholder"
	"github.com/pablasso/backlog/internal/rng"
)

// Clock returns the current time.
type Clock func() time.Time

// Engine is safe for concurrent use when its Source is.
type Engine struct {
	catalog *catalog.Catalog
	src     rng.Source
	now     Clock
	log     logrus.FieldLogger
	newID   func() string
	values  *placeholder.Generator
	matcher *matcher.Matcher
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the default catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithSource sets the random source every draw comes from.
func WithSource(src rng.Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithClock sets the clock used for creation and due dates.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.now = c }
}

// WithLogger sets the logger for debug tracing of spawn decisions.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// WithIDFunc replaces the id generator.
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New builds an engine. Without options it uses the default catalog, an
// entropy source, the wall clock and the standard logrus logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		src: rng.NewEntropy(),
		now: time.Now,
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.newID == nil {
		e.newID = e.randomID
	}
	e.values = placeholder.NewGenerator(e.src)
	e.matcher = matcher.New(e.catalog, e.src)
	return e
}

// Catalog returns the catalog the engine draws templates from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// GenerateID returns an opaque task identifier.
func (e *Engine) GenerateID() string {
	return e.newID()
}

// randomID reads a v4 UUID from the engine's source so seeded engines produce
// repeatable ids.
func (e *Engine) randomID() string {
	id, err := uuid.NewRandomFromReader(rng.Reader(e.src))
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
