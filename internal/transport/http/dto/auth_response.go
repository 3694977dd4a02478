package dto

// -------- Core auth --------

// RegisterResponse is the 201 body the mobile client parses after sign-up.
type RegisterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// LoginResponse is the 200 body the mobile client persists for the
// session: bearer token plus the routing fields the start screen needs.
type LoginResponse struct {
	Success           bool   `json:"success"`
	Token             string `json:"token"`
	UserID            string `json:"userId"`
	UserType          string `json:"userType"`
	IsProfileComplete bool   `json:"isProfileComplete"`
	Message           string `json:"message"`
}

// -------- Me / profile --------

type MeResponse struct {
	Success           bool   `json:"success"`
	UserID            string `json:"userId"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	UserType          string `json:"userType"`
	IsProfileComplete bool   `json:"isProfileComplete"`
}

type CompleteProfileResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	IsProfileComplete bool   `json:"isProfileComplete"`
}
