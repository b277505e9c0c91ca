package models

import "time"

// User is the stored account record. PasswordHash is only ever read inside
// the user service for credential verification and must never appear in an
// outward-facing response.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	City         string
	Country      string
	CreatedAt    time.Time
}
