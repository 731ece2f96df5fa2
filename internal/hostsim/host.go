// Package hostsim is an in-memory CAD host. It stands in for the real
// environment in the CLI, the preview window and tests.
package hostsim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rok-office/cwdetails/connector"
	"github.com/rok-office/cwdetails/geometry"
)

var (
	ErrUnknownElement = errors.New("unknown element")
	ErrNotAColumn     = errors.New("element is not a column")
)

type Kind int

const (
	KindColumn Kind = iota
	KindPanel
	KindConnector
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindPanel:
		return "panel"
	case KindConnector:
		return "connector"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Element is a snapshot of one host element. Only the fields matching Kind
// are set.
type Element struct {
	ID     connector.ElementID
	Kind   Kind
	Name   string
	Column connector.Column
	Panel  connector.Panel

	Connector string
	Start     geometry.Point3
	End       geometry.Point3

	// CutBy lists the hard elements subtracted from this one.
	CutBy []connector.ElementID
}

var _ connector.Host = (*Host)(nil)

type Host struct {
	mu       sync.Mutex
	nextID   connector.ElementID
	elements map[connector.ElementID]*Element
	order    []connector.ElementID
	active   []connector.ElementID
}

func New() *Host {
	return &Host{
		nextID:   1,
		elements: make(map[connector.ElementID]*Element),
	}
}

func (h *Host) add(e *Element) connector.ElementID {
	e.ID = h.nextID
	h.nextID++
	h.elements[e.ID] = e
	h.order = append(h.order, e.ID)
	return e.ID
}

// AddColumn stores c under a new id. Active columns are returned by
// ActiveElementIDs.
func (h *Host) AddColumn(c connector.Column, active bool) connector.ElementID {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.add(&Element{Kind: KindColumn, Column: c})
	h.elements[id].Column.ID = id
	if active {
		h.active = append(h.active, id)
	}
	return id
}

// Elements returns copies of all elements in creation order.
func (h *Host) Elements() []Element {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Element, 0, len(h.order))
	for _, id := range h.order {
		e := *h.elements[id]
		e.CutBy = append([]connector.ElementID(nil), e.CutBy...)
		out = append(out, e)
	}
	return out
}

func (h *Host) Element(id connector.ElementID) (Element, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.elements[id]
	if !ok {
		return Element{}, false
	}
	out := *e
	out.CutBy = append([]connector.ElementID(nil), e.CutBy...)
	return out, true
}

func (h *Host) ActiveElementIDs(ctx context.Context) ([]connector.ElementID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]connector.ElementID(nil), h.active...), nil
}

func (h *Host) Column(ctx context.Context, id connector.ElementID) (connector.Column, error) {
	if err := ctx.Err(); err != nil {
		return connector.Column{}, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.elements[id]
	if !ok {
		return connector.Column{}, fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}
	if e.Kind != KindColumn {
		return connector.Column{}, fmt.Errorf("%w: %d is a %v", ErrNotAColumn, id, e.Kind)
	}
	return e.Column, nil
}

func (h *Host) CreateRectangularPanel(ctx context.Context, p connector.Panel) (connector.ElementID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.add(&Element{Kind: KindPanel, Panel: p}), nil
}

func (h *Host) SubtractElements(ctx context.Context, hard, soft []connector.ElementID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, id := range append(append([]connector.ElementID(nil), hard...), soft...) {
		if _, ok := h.elements[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownElement, id)
		}
	}
	for _, id := range soft {
		e := h.elements[id]
		e.CutBy = append(e.CutBy, hard...)
	}
	return nil
}

func (h *Host) CreateStandardConnector(ctx context.Context, name string, start, end geometry.Point3) (connector.ElementID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.add(&Element{Kind: KindConnector, Connector: name, Start: start, End: end}), nil
}

func (h *Host) SetName(ctx context.Context, id connector.ElementID, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.elements[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}
	e.Name = name
	return nil
}
