package tui

import (
	"github.com/pablasso/backlog/internal/demo"
	"github.com/pablasso/backlog/internal/engine"
)

// Options configures TUI startup behavior.
type Options struct {
	Engine   *engine.Engine // required
	Autoplay bool           // start with autoplay running
	Config   demo.Config    // autoplay pacing
}
