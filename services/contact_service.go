package services

import (
	"context"
	"sort"
	"time"

	"wedding_server/models"

	"github.com/google/uuid"
)

// ContactService persists contact-form submissions and fans out the
// notification emails.
type ContactService struct {
	Dynamo   *DynamoService
	Notifier Notifier
}

func (s *ContactService) SubmitContact(ctx context.Context, input models.ContactInput) error {
	if err := ValidateStruct(input); err != nil {
		return err
	}

	contact := models.Contact{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		Date:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.Contact{}.TableName(), contact); err != nil {
		return err
	}

	s.Notifier.SendContactEmails(input.Name, input.Email, input.Message)
	return nil
}

// ListContacts returns every submission, newest first.
func (s *ContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.Dynamo.ScanAll(ctx, models.Contact{}.TableName(), &contacts); err != nil {
		return nil, err
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].Date > contacts[j].Date })
	return contacts, nil
}
