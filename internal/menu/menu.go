// Package menu defines the ThreadWriter application menu and forwards
// its selections to front-end listeners as named events.
package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Item identifiers.
const (
	ItemAbout       = "about"
	ItemResetLayout = "reset_layout"
	ItemQuit        = "quit"
)

// Events emitted to front-end listeners.
const (
	EventAbout       = "tw-about"
	EventResetLayout = "tw-reset-layout"
)

// ErrUnknownItem is returned by Dispatcher.Handle for ids not in the menu.
var ErrUnknownItem = errors.New("unknown menu item")

// Item is a single menu entry.
type Item struct {
	ID    string
	Label string
}

// Menu is a titled submenu of items.
type Menu struct {
	Title string
	Items []Item
}

// Default returns the ThreadWriter menu.
func Default() Menu {
	return Menu{
		Title: "ThreadWriter",
		Items: []Item{
			{ID: ItemAbout, Label: "About"},
			{ID: ItemResetLayout, Label: "Reset layout"},
			{ID: ItemQuit, Label: "Quit"},
		},
	}
}

// Emitter delivers a named event to front-end listeners.
type Emitter interface {
	Emit(event string) error
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(event string) error

// Emit calls f(event).
func (f EmitterFunc) Emit(event string) error {
	return f(event)
}

// JSONLines returns an Emitter that writes one {"event": "..."} object per line to w.
func JSONLines(w io.Writer) Emitter {
	enc := json.NewEncoder(w)
	return EmitterFunc(func(event string) error {
		if err := enc.Encode(map[string]string{"event": event}); err != nil {
			return fmt.Errorf("writing event %s: %w", event, err)
		}
		return nil
	})
}

// Dispatcher maps menu selections to events or process exit.
type Dispatcher struct {
	emitter Emitter
	exit    func(code int)
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher.
// exit is called with code 0 when Quit is selected.
// If logger is nil, the dispatcher does not log.
func NewDispatcher(emitter Emitter, exit func(code int), logger *zerolog.Logger) *Dispatcher {
	d := &Dispatcher{emitter: emitter, exit: exit, log: zerolog.Nop()}
	if logger != nil {
		d.log = logger.With().Str("component", "menu").Logger()
	}
	return d
}

// Handle performs the action bound to item id and returns the emitted event name.
// Quit returns an empty event. Emit failures are logged and otherwise ignored.
func (d *Dispatcher) Handle(id string) (string, error) {
	var event string
	switch id {
	case ItemQuit:
		d.log.Debug().Msg("quit selected")
		if d.exit != nil {
			d.exit(0)
		}
		return "", nil
	case ItemAbout:
		event = EventAbout
	case ItemResetLayout:
		event = EventResetLayout
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	if d.emitter != nil {
		if err := d.emitter.Emit(event); err != nil {
			d.log.Warn().Err(err).Str("event", event).Msg("emit failed")
		}
	}
	d.log.Debug().Str("item", id).Str("event", event).Msg("menu event")
	return event, nil
}
