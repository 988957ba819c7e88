// Package mapview holds the transient view state of the container map: the
// active waste-type filter, the loaded feature collection and an optional
// search-derived marker. It exposes the imperative surface a parent view
// drives as an explicit capability object instead of a framework ref.
package mapview

import (
	"sync"

	"kamstim/internal/entity"
	"kamstim/pkg/logger"
)

const searchZoom = 17

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// View is the imperative handle of the underlying map widget.
type View interface {
	SetView(center Coords, zoom int)
}

type Controller struct {
	logger *logger.Logger

	mu           sync.RWMutex
	view         View
	features     []entity.Feature
	wasteType    string
	searchMarker *Coords
}

func NewController(logger *logger.Logger) *Controller {
	return &Controller{logger: logger}
}

// Attach wires the live map widget. Until a view is attached, Recenter
// calls are dropped.
func (c *Controller) Attach(view View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
}

func (c *Controller) LoadFeatures(features []entity.Feature) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.features = features
}

// SetFilter selects the active waste type; the empty string clears the
// filter.
func (c *Controller) SetFilter(wasteType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wasteType = wasteType
}

func (c *Controller) Filter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.wasteType
}

// Visible returns the features matching the active filter. Filtering is a
// pure point-equality predicate over the waste-type property.
func (c *Controller) Visible() []entity.Feature {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.wasteType == "" {
		out := make([]entity.Feature, len(c.features))
		copy(out, c.features)
		return out
	}

	out := make([]entity.Feature, 0, len(c.features))
	for _, f := range c.features {
		if f.WasteType() == c.wasteType {
			out = append(out, f)
		}
	}
	return out
}

// Recenter moves the attached view to coords and drops a search marker
// there. The call is fire-and-forget: with no view attached it is a logged
// no-op, never queued or retried.
func (c *Controller) Recenter(coords Coords) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view == nil {
		c.logger.Warn("Recenter requested but no map view is attached")
		return
	}

	c.view.SetView(coords, searchZoom)
	c.searchMarker = &coords
}

// SearchMarker returns the marker from the last successful Recenter, or nil.
func (c *Controller) SearchMarker() *Coords {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.searchMarker == nil {
		return nil
	}
	marker := *c.searchMarker
	return &marker
}
