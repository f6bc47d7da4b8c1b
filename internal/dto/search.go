package dto

// SearchCriteria is the client-submitted search form payload.
type SearchCriteria struct {
	City                string `json:"city"`
	KidAges             string `json:"kidAges"`
	Availability        string `json:"availability"`
	MaxDistance         int    `json:"maxDistance"`
	OptionalPreferences string `json:"optionalPreferences,omitempty"`
}

// RequiredFields lists the fields a request must carry, in wire order.
var RequiredFields = []string{"city", "kidAges", "availability", "maxDistance"}

// Valid reports whether all required fields are present. MaxDistance zero
// counts as absent; the 1-50 range is enforced by the form, not here.
func (c SearchCriteria) Valid() bool {
	return c.City != "" && c.KidAges != "" && c.Availability != "" && c.MaxDistance != 0
}

// ReceivedFields echoes the required portion of the request back to the
// caller on validation failure.
type ReceivedFields struct {
	City         string `json:"city"`
	KidAges      string `json:"kidAges"`
	Availability string `json:"availability"`
	MaxDistance  int    `json:"maxDistance"`
}

// ValidationErrorResponse is the 400 body for requests missing required fields.
type ValidationErrorResponse struct {
	Error    string         `json:"error"`
	Required []string       `json:"required"`
	Received ReceivedFields `json:"received"`
}

// NewValidationError builds the standard missing-fields payload for a request.
func NewValidationError(c SearchCriteria) ValidationErrorResponse {
	return ValidationErrorResponse{
		Error:    "Missing required fields",
		Required: RequiredFields,
		Received: ReceivedFields{
			City:         c.City,
			KidAges:      c.KidAges,
			Availability: c.Availability,
			MaxDistance:  c.MaxDistance,
		},
	}
}

// ServerErrorResponse is the 500 body for any failure past validation.
// Details carries the error chain and is set only in development.
type ServerErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}
