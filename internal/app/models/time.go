package models

import "time"

// TimeModel carries the bookkeeping timestamps stored with a document.
// All values are UTC.
type TimeModel struct {
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

func (m *TimeModel) stamp(at time.Time) {
	m.CreatedAt = at
	m.UpdatedAt = at
}

// Touch marks the document as modified now.
func (m *TimeModel) Touch() {
	m.touchAt(time.Now().UTC())
}

func (m *TimeModel) touchAt(at time.Time) {
	if at.Before(m.CreatedAt) {
		at = m.CreatedAt
	}
	m.UpdatedAt = at
}
