package surface

import (
	"fmt"
	"log/slog"
)

// Default dimensions of a newly created element, matching an HTML canvas.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// Factory builds a 2D context for a surface of the given logical size.
type Factory func(width, height int) (Context, error)

// BrailleFactory fits every surface onto a cols x rows terminal grid.
func BrailleFactory(cols, rows int) Factory {
	return func(width, height int) (Context, error) {
		return NewBraille(width, height, cols, rows), nil
	}
}

// ImageFactory renders surfaces into RGBA images.
func ImageFactory(scale float64) Factory {
	return func(width, height int) (Context, error) {
		return NewImage(width, height, scale), nil
	}
}

// Document is a registry of drawing surfaces addressed by id.
type Document struct {
	factory       Factory
	allowFallback bool
	logger        *slog.Logger
	elements      map[string]*Element
}

// NewDocument creates an empty document. A nil factory yields elements
// that cannot provide a 2D context. When allowFallback is set, Canvas
// creates missing surfaces instead of failing.
func NewDocument(factory Factory, allowFallback bool, logger *slog.Logger) *Document {
	if logger == nil {
		logger = slog.Default()
	}
	return &Document{
		factory:       factory,
		allowFallback: allowFallback,
		logger:        logger,
		elements:      make(map[string]*Element),
	}
}

// Add registers a surface, replacing any previous one with the same id.
func (d *Document) Add(id string, width, height int) (*Element, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	el := &Element{id: id, width: width, height: height, doc: d}
	d.elements[id] = el
	return el, nil
}

func (d *Document) Lookup(id string) (*Element, error) {
	el, ok := d.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, id)
	}
	return el, nil
}

// Canvas looks up id and, if the document allows it, creates a substitute
// surface with default dimensions when none exists.
func (d *Document) Canvas(id string) (*Element, error) {
	el, err := d.Lookup(id)
	if err == nil {
		return el, nil
	}
	if !d.allowFallback {
		return nil, err
	}

	d.logger.Warn("surface not found, creating substitute", "id", id,
		"width", DefaultWidth, "height", DefaultHeight)
	el, err = d.Add(id, DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, err
	}
	el.substitute = true
	return el, nil
}

// Element is one drawing surface in a Document.
type Element struct {
	id            string
	width, height int
	substitute    bool
	doc           *Document
	ctx           Context
}

func (e *Element) ID() string       { return e.id }
func (e *Element) Width() int       { return e.width }
func (e *Element) Height() int      { return e.height }
func (e *Element) Substitute() bool { return e.substitute }

// SetSize resizes the surface. A context obtained earlier is discarded and
// rebuilt on the next Context2D call.
func (e *Element) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	e.width, e.height = width, height
	e.ctx = nil
	return nil
}

// Context2D returns the surface's drawing context, creating it once.
func (e *Element) Context2D() (Context, error) {
	if e.ctx != nil {
		return e.ctx, nil
	}
	if e.doc.factory == nil {
		e.doc.logger.Error("unable to get 2d context", "id", e.id)
		return nil, fmt.Errorf("%w: %q", ErrContextUnavailable, e.id)
	}
	ctx, err := e.doc.factory(e.width, e.height)
	if err != nil {
		e.doc.logger.Error("unable to get 2d context", "id", e.id, "err", err)
		return nil, fmt.Errorf("%w: %q: %v", ErrContextUnavailable, e.id, err)
	}
	e.ctx = ctx
	return ctx, nil
}
