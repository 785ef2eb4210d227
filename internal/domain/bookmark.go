package domain

import "time"

// DefaultFolder is applied when a bookmark is created without one.
const DefaultFolder = "General"

// Bookmark is a saved page. Bookmarks carry no ordering; the UI groups
// them by folder.
type Bookmark struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Favicon   *string   `json:"favicon"`
	Folder    string    `json:"folder"`
	CreatedAt Timestamp `json:"created_at"`
}

func (b *Bookmark) Key() string          { return b.ID }
func (b *Bookmark) StampedAt() time.Time { return time.Time(b.CreatedAt) }

// BookmarkCreate is the payload accepted by the bookmark create endpoint.
type BookmarkCreate struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Favicon *string `json:"favicon"`
	Folder  string  `json:"folder"`
}

// NewBookmark validates in, applies defaults and assigns identity and
// creation time.
func NewBookmark(in BookmarkCreate) (*Bookmark, error) {
	if in.Title == "" {
		return nil, missingField("title")
	}
	if in.URL == "" {
		return nil, missingField("url")
	}
	folder := in.Folder
	if folder == "" {
		folder = DefaultFolder
	}
	return &Bookmark{
		ID:        NewID(),
		Title:     in.Title,
		URL:       in.URL,
		Favicon:   in.Favicon,
		Folder:    folder,
		CreatedAt: Timestamp(Now()),
	}, nil
}
