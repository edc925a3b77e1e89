package models

// SignupInput is the payload for registering a patient or caregiver.
type SignupInput struct {
	Role       string  `json:"role"`
	GivenName  string  `json:"given_name"`
	FamilyName string  `json:"family_name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Phone      string  `json:"phone"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	HourlyRate float64 `json:"hourly_rate,omitempty"` // caregivers only
}

// LoginInput is the payload for authenticating.
type LoginInput struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FieldError reports a validation failure on a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
