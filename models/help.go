package models

// Help is a help-form submission: a guest offering to lend a hand with
// wedding preparations, optionally in a professional capacity.
type Help struct {
	ID        string `json:"id" dynamodbav:"id"` // PK
	Name      string `json:"name" dynamodbav:"name"`
	Phone     string `json:"phone" dynamodbav:"phone"`
	Email     string `json:"email" dynamodbav:"email"`
	HelpAreas string `json:"helpAreas" dynamodbav:"helpAreas"` // comma-separated snake_case areas
	ProAreas  string `json:"proAreas" dynamodbav:"proAreas"`
	Message   string `json:"message" dynamodbav:"message"`
	Date      string `json:"date" dynamodbav:"date"`
}

// TableName returns the DynamoDB table name
func (Help) TableName() string {
	return "HelpRequests"
}

// HelpInput is the request body for the help form.
type HelpInput struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required"`
	HelpAreas string `json:"helpAreas"`
	ProAreas  string `json:"proAreas"`
	Message   string `json:"message"`
}
