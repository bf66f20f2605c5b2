package domain

// Session is a reporting session (budgétaire, clôture, ...) for one entity.
// Deliberations and meetings are append-only: entries are added through the
// session service and never removed.
type Session struct {
	ID            string         `json:"id"`
	Type          string         `json:"type,omitempty"`
	EntityID      string         `json:"entityId,omitempty"`
	Deliberations []Deliberation `json:"deliberations"`
	Meetings      []Meeting      `json:"meetings"`
}

func (s Session) RecordID() string { return s.ID }

func (s Session) WithID(id string) Session { s.ID = id; return s }

// Deliberation is a decision item recorded during a session.
type Deliberation struct {
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Status string `json:"status,omitempty"`
}

// Meeting is a scheduled video meeting for a session.
type Meeting struct {
	ID       string `json:"id"`
	Room     string `json:"room,omitempty"`
	Provider string `json:"provider,omitempty"`
}
