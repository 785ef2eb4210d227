package domain

import "time"

// HistoryEntry is one visited page. Entries are listed newest-first.
type HistoryEntry struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Favicon   *string   `json:"favicon"`
	VisitedAt Timestamp `json:"visited_at"`
}

func (h *HistoryEntry) Key() string          { return h.ID }
func (h *HistoryEntry) StampedAt() time.Time { return time.Time(h.VisitedAt) }

// HistoryCreate is the payload accepted by the history create endpoint.
type HistoryCreate struct {
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Favicon *string `json:"favicon"`
}

// NewHistoryEntry validates in and assigns identity and visit time.
func NewHistoryEntry(in HistoryCreate) (*HistoryEntry, error) {
	if in.URL == "" {
		return nil, missingField("url")
	}
	if in.Title == "" {
		return nil, missingField("title")
	}
	return &HistoryEntry{
		ID:        NewID(),
		URL:       in.URL,
		Title:     in.Title,
		Favicon:   in.Favicon,
		VisitedAt: Timestamp(Now()),
	}, nil
}
