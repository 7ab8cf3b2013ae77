package dto

// SignupRequest represents the data needed to register a new user
type SignupRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required,min=8,max=128,password_strength"`
	PhoneNumber      string `json:"phone_number" validate:"max=30"`
	Gender           string `json:"gender" validate:"max=20"`
	DateOfBirth      string `json:"date_of_birth" validate:"max=30"`
	MembershipStatus string `json:"membership_status" validate:"max=30"`
}

// LoginRequest represents the data needed to login.
// The password carries no strength rules here: a malformed password must fail
// the same way a wrong one does, so nothing about the account leaks.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

// CompanyPayload is the company block of a job payload
type CompanyPayload struct {
	Name         string `json:"name" validate:"required,max=100"`
	ContactEmail string `json:"contactEmail" validate:"required,email,max=255"`
	ContactPhone string `json:"contactPhone" validate:"required,max=30"`
}

// CreateJobRequest represents the data needed to create a job listing
type CreateJobRequest struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Type        string         `json:"type" validate:"required,max=50"`
	Description string         `json:"description" validate:"required,max=5000"`
	Company     CompanyPayload `json:"company" validate:"required"`
}

// UpdateJobRequest carries a partial job update; absent fields keep their
// stored values.
type UpdateJobRequest struct {
	Title       *string         `json:"title" validate:"omitempty,max=200"`
	Type        *string         `json:"type" validate:"omitempty,max=50"`
	Description *string         `json:"description" validate:"omitempty,max=5000"`
	Company     *CompanyPayload `json:"company" validate:"omitempty"`
}
