package models

// Assistant is an opaque roster entry used only for display.
type Assistant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
}
