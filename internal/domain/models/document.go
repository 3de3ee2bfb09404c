package models

import "time"

// Document is a single editable document. UserID is nil for ownerless
// documents (the seeded initial document has no owner).
type Document struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	UserID       *int      `json:"userId"`
	LastModified time.Time `json:"lastModified"`
}

// DefaultTitle is applied when a document is created with an empty title.
const DefaultTitle = "Untitled"
