package model

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// UserProfile holds the personalization attributes used to tailor prompts.
// Every field is free text; an all-blank profile means "no profile yet".
type UserProfile struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	Steps  string `json:"steps"`
	Notes  string `json:"notes"`
}

// GroundingSource is a web citation attached to a model reply by the
// backend's search tool.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ImageData carries an image as a base64 payload plus its MIME type, the
// form it is stored in and sent to the generative backend.
type ImageData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Message is a single chat message. Messages are immutable once appended
// to a session; ordering is append order.
type Message struct {
	Role      Role              `json:"role"`
	Text      string            `json:"text"`
	Image     *ImageData        `json:"image,omitempty"`
	Sources   []GroundingSource `json:"sources,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// ChatSession is a titled conversation thread. The id and title are fixed
// at creation and never change afterwards.
type ChatSession struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
}

// SessionCollection is the full persisted chat state: sessions ordered
// newest-first plus the currently active session id. A nil ActiveID means
// "new chat" / nothing selected.
type SessionCollection struct {
	Sessions []ChatSession `json:"sessions"`
	ActiveID *string       `json:"active_id,omitempty"`
}
