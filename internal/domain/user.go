package domain

import "github.com/google/uuid"

type Users struct {
	ID           uuid.UUID `db:"id"`
	UserName     string    `db:"user_name"`
	PasswordHash *string   `db:"password_hash"`
	StudentCode  string    `db:"student_code"`
	Role         string    `db:"role"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// AuthPayload is the decoded identity carried by a bearer token
type AuthPayload struct {
	UserID   string `json:"sub"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
