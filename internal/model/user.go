package model

// User represents a registered library member.
type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"` // Never expose in JSON
	Name         string  `json:"name"`
	StudentID    string  `json:"student_id"`
	Email        *string `json:"email,omitempty"`
}
