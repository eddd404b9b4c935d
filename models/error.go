package models

// Error is the envelope every failed request is serialized into.
type Error struct {
	Message string `json:"error"`
}
