package domain

import "time"

// Records are plain value types shared across store, services, and transport.
// JSON tags match the field names the frontend already consumes.

// Ministry is a top-level supervising ministry.
type Ministry struct {
	ID       string `json:"id"`
	Sigle    string `json:"sigle,omitempty"`
	Name     string `json:"name,omitempty"`
	Minister string `json:"minister,omitempty"`
}

func (m Ministry) RecordID() string { return m.ID }

func (m Ministry) WithID(id string) Ministry { m.ID = id; return m }

// Entity is a public enterprise (EPE or Société d'État) attached to a
// ministry. The ministryId reference is not enforced; readers must tolerate
// dangling ids.
type Entity struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	MinistryID string `json:"ministryId,omitempty"`
}

func (e Entity) RecordID() string { return e.ID }

func (e Entity) WithID(id string) Entity { e.ID = id; return e }

// Project belongs to an entity, again without referential enforcement.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}

func (p Project) RecordID() string { return p.ID }

func (p Project) WithID(id string) Project { p.ID = id; return p }

// User is a platform account. Roles are free-form strings such as "ADMIN".
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email,omitempty"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

func (u User) RecordID() string { return u.ID }

func (u User) WithID(id string) User { u.ID = id; return u }

// Course is an e-learning course.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c Course) RecordID() string { return c.ID }

func (c Course) WithID(id string) Course { c.ID = id; return c }

// Notification is an append-only event visible to all users. Once written it
// is never removed or updated.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
