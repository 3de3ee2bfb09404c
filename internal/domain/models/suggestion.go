package models

// Suggestion position tags. Left-tagged suggestions expand ideas, right-tagged
// ones refine existing content; the client uses the tag for panel placement.
const (
	PositionLeft  = "left"
	PositionRight = "right"
)

// Suggestion is an AI-proposed writing prompt attached to a document.
// Generated flips to true exactly once, when content is produced on demand.
type Suggestion struct {
	ID               int    `json:"id"`
	DocumentID       int    `json:"documentId"`
	Prompt           string `json:"prompt"`
	Description      string `json:"description"`
	Position         string `json:"position"`
	Generated        bool   `json:"generated"`
	GeneratedContent string `json:"generatedContent"`
}
