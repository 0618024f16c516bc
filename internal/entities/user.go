package entities

import "encoding/json"

// User is one registered account. PasswordHash is a bcrypt hash and is
// never serialized to API responses.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}

// SaveSlot is the single cloud save per user. GameState is stored
// opaque; the service never interprets the payload, only versions it.
type SaveSlot struct {
	UserID    string          `json:"userId"`
	GameState json.RawMessage `json:"gameState"`
	SavedAt   int64           `json:"savedAt"`
	Version   int64           `json:"version"`
}
