package models

// Application represents one vehicle wrap application submitted from the
// landing page form. All values arrive as multipart form fields.
type Application struct {
	FirstName string `form:"firstName" json:"firstName"`
	LastName  string `form:"lastName" json:"lastName"`
	Email     string `form:"email" json:"email"`
	Phone     string `form:"phone" json:"phone"`
	Address   string `form:"address" json:"address"`
	City      string `form:"city" json:"city"`
	State     string `form:"state" json:"state"`
	ZipCode   string `form:"zipCode" json:"zipCode"`
	CarMake   string `form:"carMake" json:"carMake"`
	CarModel  string `form:"carModel" json:"carModel"`
	CarYear   string `form:"carYear" json:"carYear"`
}

// SubmissionResponse is the terminal result of one submission, returned to
// the browser as JSON. Error carries the transport failure detail when
// Success is false.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
