package services

import (
	"context"
	"sort"
	"time"

	"wedding_server/models"

	"github.com/google/uuid"
)

// HelpService persists help-form submissions (guests offering to pitch in
// with preparations) and fans out the notification emails.
type HelpService struct {
	Dynamo   *DynamoService
	Notifier Notifier
}

func (s *HelpService) SubmitHelp(ctx context.Context, input models.HelpInput) error {
	if err := ValidateStruct(input); err != nil {
		return err
	}

	help := models.Help{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		HelpAreas: input.HelpAreas,
		ProAreas:  input.ProAreas,
		Message:   input.Message,
		Date:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.Help{}.TableName(), help); err != nil {
		return err
	}

	s.Notifier.SendHelpEmails(input.Name, input.Phone, input.Email, input.HelpAreas, input.ProAreas, input.Message)
	return nil
}

// ListHelpEntries returns every submission, newest first.
func (s *HelpService) ListHelpEntries(ctx context.Context) ([]models.Help, error) {
	var entries []models.Help
	if err := s.Dynamo.ScanAll(ctx, models.Help{}.TableName(), &entries); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	return entries, nil
}
