package netlist

import "github.com/netlistpaths/netlistgraph/pkg/types"

// Waypoints accumulates an ordered list of named anchors for a
// point-to-point query: a start point, zero or more through points, and a
// finish point. The list is built incrementally because callers (a CLI
// flag parser, a scripting binding) typically learn the start, through,
// and finish names in separate steps rather than all at once.
//
// Grounded on the original Waypoints class: waypoints are held by name,
// not by resolved vertex, so a typo only surfaces when the query actually
// runs.
type Waypoints struct {
	names          []string
	gotStartPoint  bool
	gotFinishPoint bool
}

// AddStartPoint records name as the start point. Fails if a start point is
// already set. Inserted at the front of the list if it already holds
// through/finish points, otherwise appended.
func (w *Waypoints) AddStartPoint(name string) error {
	if w.gotStartPoint {
		return types.NewError(types.ErrKindWaypointRule, nil, "start point already defined")
	}
	w.gotStartPoint = true
	if len(w.names) > 0 {
		w.names = append([]string{name}, w.names...)
	} else {
		w.names = append(w.names, name)
	}
	return nil
}

// AddFinishPoint records name as the finish point. Fails if a finish point
// is already set. Always inserted at the end of the list.
func (w *Waypoints) AddFinishPoint(name string) error {
	if w.gotFinishPoint {
		return types.NewError(types.ErrKindWaypointRule, nil, "finish point already defined")
	}
	w.gotFinishPoint = true
	w.names = append(w.names, name)
	return nil
}

// AddThroughPoint records name as an intermediate waypoint, inserted just
// before the finish point if one is already set, otherwise appended.
func (w *Waypoints) AddThroughPoint(name string) {
	if len(w.names) == 0 {
		w.names = append(w.names, name)
		return
	}
	insertAt := len(w.names)
	if w.gotFinishPoint {
		insertAt--
	}
	w.names = append(w.names, "")
	copy(w.names[insertAt+1:], w.names[insertAt:])
	w.names[insertAt] = name
}

// ClearWaypoints discards the accumulated list, resetting the state
// machine to empty.
func (w *Waypoints) ClearWaypoints() {
	w.names = nil
	w.gotStartPoint = false
	w.gotFinishPoint = false
}

// NumWaypoints returns the number of waypoints currently accumulated.
func (w *Waypoints) NumWaypoints() int { return len(w.names) }

// Empty reports whether no waypoints have been accumulated.
func (w *Waypoints) Empty() bool { return len(w.names) == 0 }

// Names returns the accumulated waypoint names in order. The returned
// slice aliases internal storage and must not be mutated.
func (w *Waypoints) Names() []string { return w.names }
