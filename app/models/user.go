package models

import "time"

// User is the identity record. Email is stored lowercased; uniqueness is
// enforced by the users_email_key index. PasswordHash holds a bcrypt digest,
// never the plaintext.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	PhoneNumber      string
	Gender           string
	DateOfBirth      string
	MembershipStatus string
	CreatedAt        time.Time
}
