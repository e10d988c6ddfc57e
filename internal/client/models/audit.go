package models

import (
	"reflect"
	"time"
)

// AuditAction classifies an audit trail entry.
type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
)

// Change records a single field's before/after values in an update event.
type Change struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// AuditEvent is one entry of an entity's append-only audit trail. Changes is
// only populated for update events.
type AuditEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	User      string            `json:"user"`
	Action    AuditAction       `json:"action"`
	Changes   map[string]Change `json:"changes,omitempty"`
}

// NewCreateEvent builds the create entry that must lead every audit trail.
func NewCreateEvent(user string, at time.Time) AuditEvent {
	return AuditEvent{Timestamp: at, User: user, Action: ActionCreate}
}

// NewUpdateEvent builds an update entry carrying a field-level diff.
func NewUpdateEvent(user string, at time.Time, changes map[string]Change) AuditEvent {
	return AuditEvent{Timestamp: at, User: user, Action: ActionUpdate, Changes: changes}
}

// NewDeleteEvent builds a delete entry.
func NewDeleteEvent(user string, at time.Time) AuditEvent {
	return AuditEvent{Timestamp: at, User: user, Action: ActionDelete}
}

// FieldChanges computes the field-level diff between two versions of a
// gemstone, keyed by the JSON field name. Bookkeeping fields (timestamps,
// editor ids, the audit trail itself) are not compared. Tag sets are compared
// in canonical form, so reordering tags is not a change.
func FieldChanges(before, after Gemstone) map[string]Change {
	changes := make(map[string]Change)

	cmp := func(field string, b, a any) {
		if !reflect.DeepEqual(b, a) {
			changes[field] = Change{Before: b, After: a}
		}
	}

	cmp("name", before.Name, after.Name)
	cmp("category", before.Category, after.Category)
	cmp("type", before.Type, after.Type)
	cmp("weight", before.Weight, after.Weight)
	cmp("dimensions", before.Dimensions, after.Dimensions)
	cmp("color", before.Color, after.Color)
	cmp("clarity", before.Clarity, after.Clarity)
	cmp("cut", before.Cut, after.Cut)
	cmp("origin", before.Origin, after.Origin)
	cmp("treatment", before.Treatment, after.Treatment)
	cmp("certification", before.Certification, after.Certification)
	cmp("acquisitionDate", before.AcquisitionDate, after.AcquisitionDate)
	cmp("acquisitionPrice", before.AcquisitionPrice, after.AcquisitionPrice)
	cmp("estimatedValue", before.EstimatedValue, after.EstimatedValue)
	cmp("seller", before.Seller, after.Seller)
	cmp("notes", before.Notes, after.Notes)
	cmp("tags", NormalizeTags(before.Tags), NormalizeTags(after.Tags))
	cmp("images", before.Images, after.Images)
	cmp("video", before.Video, after.Video)
	cmp("qrCode", before.QRCode, after.QRCode)

	if len(changes) == 0 {
		return nil
	}
	return changes
}
