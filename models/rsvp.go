package models

// Rsvp is the canonical attendance response for one email address.
// Email is the table key and is always stored normalized (lower-cased,
// trimmed), so there is at most one record per attendee.
type Rsvp struct {
	Name      string `json:"name" dynamodbav:"name"`
	Email     string `json:"email" dynamodbav:"email"` // PK
	Phone     string `json:"phone" dynamodbav:"phone"`
	GuestOf   string `json:"guestOf" dynamodbav:"guestOf"`
	PlusOne   string `json:"plusOne" dynamodbav:"plusOne"`
	Children  int    `json:"children" dynamodbav:"children"`
	Attending string `json:"attending" dynamodbav:"attending"` // "", "Yes", "No"
	DateTime  string `json:"dateTime" dynamodbav:"dateTime"`   // ISO-8601, "" if undecided
}

// TableName returns the DynamoDB table name
func (Rsvp) TableName() string {
	return "Rsvps"
}
