package models

// Contact is a contact-form submission.
type Contact struct {
	ID      string `json:"id" dynamodbav:"id"` // PK
	Name    string `json:"name" dynamodbav:"name"`
	Phone   string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Email   string `json:"email" dynamodbav:"email"`
	Message string `json:"message" dynamodbav:"message"`
	Date    string `json:"date" dynamodbav:"date"`
}

// TableName returns the DynamoDB table name
func (Contact) TableName() string {
	return "Contacts"
}

// ContactInput is the request body for the contact form.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}
