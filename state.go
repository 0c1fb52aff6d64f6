package hopf

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoSelection is returned by Commit when no base point is selected.
var ErrNoSelection = errors.New("hopf: no point selected")

// CommittedFiber is a fiber the user has added to the scene.
type CommittedFiber struct {
	Base  Point
	Color HSL
	Ring  Ring
}

// VisualizationState is the selection, preview and committed fibers of a
// Hopf fibration view.
//
// It is a value: every method leaves the receiver untouched and returns the
// updated state, so callers own it outright and decide how updates from
// concurrent input sources are serialized. The zero value is not ready for
// use; create states with NewVisualizationState.
type VisualizationState struct {
	divisions int
	mobile    bool

	selected     Point
	hasSelection bool
	preview      Polyline
	previewColor HSL

	committed []CommittedFiber
}

// NewVisualizationState returns an empty state with no selection.
func NewVisualizationState(opts ...StateOption) VisualizationState {
	o := defaultStateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return VisualizationState{
		divisions: o.divisions,
		mobile:    o.mobile,
	}
}

// Select makes p the selected point and recomputes the preview fiber and
// its color.
func (s VisualizationState) Select(p Point) VisualizationState {
	s.selected = p
	s.hasSelection = true
	s.previewColor = MapColor(p)
	s.preview = Sample(p, s.divisions)
	return s
}

// ClearSelection drops the selected point, e.g. when the pointer leaves the
// sphere.
func (s VisualizationState) ClearSelection() VisualizationState {
	s.selected = Point{}
	s.hasSelection = false
	s.preview = nil
	return s
}

// SetMobile returns the state with the mobile flag changed.
func (s VisualizationState) SetMobile(mobile bool) VisualizationState {
	s.mobile = mobile
	return s
}

// Selected returns the selected point and whether there is one.
func (s VisualizationState) Selected() (Point, bool) {
	return s.selected, s.hasSelection
}

// Mobile reports whether the state is driven by a touch device.
func (s VisualizationState) Mobile() bool { return s.mobile }

// Divisions returns the preview sampling density.
func (s VisualizationState) Divisions() int { return s.divisions }

// PreviewVisible reports whether the live preview curve should be drawn.
func (s VisualizationState) PreviewVisible() bool {
	return s.hasSelection && !s.mobile
}

// Preview returns the preview polyline and its color. The polyline is nil
// when there is no selection. It is computed even on mobile so that a
// consumer can still show the selected point's color.
func (s VisualizationState) Preview() (Polyline, HSL) {
	return s.preview, s.previewColor
}

// Commit adds the fiber over the selected point to the committed set.
//
// On error the returned state equals the receiver. A selection close to the
// north pole fails with a *DegenerateFiberError.
func (s VisualizationState) Commit() (VisualizationState, error) {
	if !s.hasSelection {
		return s, ErrNoSelection
	}
	ring, err := FitRing(s.selected)
	if err != nil {
		return s, fmt.Errorf("hopf: commit %v: %w", s.selected, err)
	}
	return s.commitRing(s.selected, s.previewColor, ring), nil
}

// CommitFit adds a fiber fitted elsewhere, typically by FitAll, without
// fitting it again. The selection is left unchanged. A result carrying an
// error is rejected with that error and the receiver is returned.
func (s VisualizationState) CommitFit(res FitResult) (VisualizationState, error) {
	if res.Err != nil {
		return s, fmt.Errorf("hopf: commit %v: %w", res.Point, res.Err)
	}
	return s.commitRing(res.Point, MapColor(res.Point), res.Ring), nil
}

func (s VisualizationState) commitRing(p Point, c HSL, ring Ring) VisualizationState {
	// Clip forces append to copy, so earlier states never share storage.
	s.committed = append(slices.Clip(s.committed), CommittedFiber{
		Base:  p,
		Color: c,
		Ring:  ring,
	})
	Logger().Debug("hopf: fiber committed",
		"point", p.String(),
		"radius", ring.Radius,
		"segments", ring.Segments,
		"total", len(s.committed))
	return s
}

// Committed returns a copy of the committed fibers in commit order.
func (s VisualizationState) Committed() []CommittedFiber {
	return slices.Clone(s.committed)
}

// Len returns the number of committed fibers.
func (s VisualizationState) Len() int { return len(s.committed) }
