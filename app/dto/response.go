package dto

// UserResponse represents user data in API responses (excludes the password digest)
type UserResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	MembershipStatus string `json:"membership_status"`
	CreatedAt        string `json:"created_at"`
}

// SignupResponse represents the response after successful registration
type SignupResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// JobResponse represents a job listing in API responses
type JobResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Company     CompanyPayload `json:"company"`
	OwnerUserID string         `json:"owner_user_id,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
