package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	Name      string `json:"name"      validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message  string `json:"message"`
	UserName string `json:"userName"`
}

// --- Items ---

// createItemRequest still accepts owner/borrower from older clients; the
// acting user always comes from the session.
type createItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type"        validate:"required,oneof=lending borrowing"`
	Owner       string `json:"owner,omitempty"`
	Borrower    string `json:"borrower,omitempty"`
}

// claimItemRequest is the PATCH body. "lent" is what the web client sends
// when fulfilling a lending item and means the same as "borrowed".
type claimItemRequest struct {
	Status   string `json:"status"   validate:"required,oneof=borrowed lent"`
	Owner    string `json:"owner,omitempty"`
	Borrower string `json:"borrower,omitempty"`
}

// --- Lost & found ---

type createReportRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"      validate:"required,oneof=lost found"`
	Finder      string `json:"finder,omitempty"`
	Loser       string `json:"loser,omitempty"`
}
