package models

// User is an admin dashboard account.
type User struct {
	ID       string `json:"id" dynamodbav:"id"`
	Username string `json:"username" dynamodbav:"username"` // PK
	Password string `json:"-" dynamodbav:"password"`        // bcrypt hash, never serialized
}

// TableName returns the DynamoDB table name
func (User) TableName() string {
	return "Users"
}

// Credentials is the request body for register and login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
