package models

// Guest is one entry in the guest-list document: a mailing address plus
// the RSVP status mirrored from the matching Rsvp record, when one exists.
// The list is persisted as a single pretty-printed JSON array on disk.
type Guest struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	GuestOf   string `json:"guestOf"`
	PlusOne   string `json:"plusOne"`
	Children  int    `json:"children"`
	Attending string `json:"attending"`
	DateTime  string `json:"dateTime"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// GuestInput is the request body for creating or updating a guest.
type GuestInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,usphone"`
	Address1  string `json:"address1" validate:"required"`
	Address2  string `json:"address2"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required,uszip"`
	GuestOf   string `json:"guestOf" validate:"required,oneof=Bride Groom Both"`
	PlusOne   string `json:"plusOne"`
	Children  int    `json:"children" validate:"min=0,max=2"`
	Attending string `json:"attending" validate:"omitempty,oneof=Yes No"`
}

// RsvpInput is the request body for a standalone RSVP submission.
type RsvpInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Attending string `json:"attending" validate:"omitempty,oneof=Yes No"`
	PlusOne   string `json:"plusOne"`
	Children  int    `json:"children"`
	DateTime  string `json:"dateTime"`
}
