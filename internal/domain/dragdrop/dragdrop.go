// Package dragdrop defines the drag-and-drop contract used to move projects
// between board lists.
//
// A drag gesture carries a DataTransfer from a Draggable source to a
// DropTarget. The only payload the board understands is a project id stored
// as plain text:
//
//	dt := dragdrop.NewDataTransfer()
//	dragdrop.Item(id).DragStart(dt)
//	if zone.DragOver(dt) {
//	    zone.Drop(dt)
//	}
package dragdrop

import (
	"sync"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// MIMEText is the payload type carrying a project id.
const MIMEText = "text/plain"

// DataTransfer is the typed payload of a single drag gesture. Types are kept
// in the order they were first set. The zero value is an empty payload, and
// a nil *DataTransfer reads as empty.
type DataTransfer struct {
	types []string
	data  map[string]string
}

// NewDataTransfer returns an empty payload.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{data: make(map[string]string)}
}

// SetData stores value under the given MIME type, replacing any previous
// value for that type.
func (dt *DataTransfer) SetData(mime, value string) {
	if dt.data == nil {
		dt.data = make(map[string]string)
	}
	if _, ok := dt.data[mime]; !ok {
		dt.types = append(dt.types, mime)
	}
	dt.data[mime] = value
}

// GetData returns the value stored under mime, or "" when absent.
func (dt *DataTransfer) GetData(mime string) string {
	if dt == nil {
		return ""
	}
	return dt.data[mime]
}

// Types returns the MIME types present in the payload.
func (dt *DataTransfer) Types() []string {
	if dt == nil {
		return nil
	}
	out := make([]string, len(dt.types))
	copy(out, dt.types)
	return out
}

// Draggable is implemented by board items that can be picked up.
type Draggable interface {
	DragStart(dt *DataTransfer)
	DragEnd(dt *DataTransfer)
}

// DropTarget is implemented by lists that accept dropped items.
type DropTarget interface {
	// DragOver is fired continuously while an item hovers over the target.
	// It reports whether the payload is acceptable, which is what permits
	// a subsequent Drop.
	DragOver(dt *DataTransfer) bool

	// Drop commits the gesture. It reports whether a commit was attempted.
	Drop(dt *DataTransfer) bool

	// DragLeave ends the gesture without effect.
	DragLeave()
}

// Item is the draggable form of a project: its payload is the project id.
type Item string

var _ Draggable = Item("")

// DragStart places the project id into the payload as plain text.
func (i Item) DragStart(dt *DataTransfer) {
	dt.SetData(MIMEText, string(i))
}

// DragEnd is a no-op; the target list re-renders on the resulting state
// change.
func (i Item) DragEnd(_ *DataTransfer) {}

// Committer applies a dropped id to the target status. It is normally the
// state container's UpdateProjectStatus.
type Committer func(id string, status project.Status) bool

// ZoneState is the drop zone's position in the gesture state machine.
type ZoneState int

const (
	ZoneIdle ZoneState = iota
	ZoneDragOverAccepted
)

// String implements fmt.Stringer.
func (s ZoneState) String() string {
	if s == ZoneDragOverAccepted {
		return "drag-over-accepted"
	}
	return "idle"
}

// DropZone is the DropTarget of one board list. Drop only takes effect after
// an accepted DragOver in the same gesture; every gesture ends in ZoneIdle.
type DropZone struct {
	status project.Status
	commit Committer

	mu    sync.Mutex
	state ZoneState
}

var _ DropTarget = (*DropZone)(nil)

// NewDropZone returns an idle zone that moves dropped projects to status
// through commit.
func NewDropZone(status project.Status, commit Committer) *DropZone {
	return &DropZone{status: status, commit: commit}
}

// Status returns the status projects dropped on this zone receive.
func (z *DropZone) Status() project.Status {
	return z.status
}

// State returns the current gesture state.
func (z *DropZone) State() ZoneState {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.state
}

// Droppable reports whether the zone is currently marked as a valid drop
// location.
func (z *DropZone) Droppable() bool {
	return z.State() == ZoneDragOverAccepted
}

// DragOver accepts the gesture when the payload's first type is plain text.
func (z *DropZone) DragOver(dt *DataTransfer) bool {
	z.mu.Lock()
	defer z.mu.Unlock()

	if !compatible(dt) {
		return false
	}
	z.state = ZoneDragOverAccepted
	return true
}

// Drop reads the project id from the payload and commits it to the zone's
// status. Without a preceding accepted DragOver, or without a payload, it
// does nothing.
func (z *DropZone) Drop(dt *DataTransfer) bool {
	z.mu.Lock()
	accepted := z.state == ZoneDragOverAccepted
	z.state = ZoneIdle
	z.mu.Unlock()

	if !accepted || dt == nil {
		return false
	}
	z.commit(dt.GetData(MIMEText), z.status)
	return true
}

// DragLeave clears the droppable mark.
func (z *DropZone) DragLeave() {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.state = ZoneIdle
}

func compatible(dt *DataTransfer) bool {
	if dt == nil || len(dt.types) == 0 {
		return false
	}
	return dt.types[0] == MIMEText
}
