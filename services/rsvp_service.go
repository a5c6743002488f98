package services

import (
	"context"
	"errors"
	"log"
	"sort"

	"wedding_server/models"
	"wedding_server/utils"
)

// RsvpService handles standalone RSVP submissions: attendees who respond
// before, or without ever, appearing on the invite list.
type RsvpService struct {
	Rsvps    RsvpStore
	Sync     *SyncService
	Notifier Notifier
}

// SubmitRsvp upserts the RSVP record for the submitter's email, sends the
// confirmation emails and resyncs the guest list. Unlike the guest update
// path there is no diff suppression: every submission sends a confirmation.
// Returns whether a new record was created (vs. an existing one updated).
func (s *RsvpService) SubmitRsvp(ctx context.Context, input models.RsvpInput) (bool, error) {
	if err := ValidateStruct(input); err != nil {
		return false, err
	}

	normalizedEmail := utils.NormalizeEmail(input.Email)
	existingRsvp, err := s.Rsvps.FindByEmail(ctx, normalizedEmail)
	if err != nil {
		return false, err
	}

	// A submission that omits the decision keeps the prior one.
	attending := input.Attending
	if attending == "" && existingRsvp != nil {
		attending = existingRsvp.Attending
	}

	fields := map[string]interface{}{
		"name":      input.Name,
		"email":     normalizedEmail,
		"phone":     input.Phone,
		"attending": attending,
		"plusOne":   input.PlusOne,
		"children":  input.Children,
		"dateTime":  input.DateTime,
	}

	created := false
	if existingRsvp != nil {
		_, err = s.Rsvps.UpdateByEmail(ctx, normalizedEmail, fields)
		if err == nil {
			log.Printf("✅ Updated RSVP for %s", normalizedEmail)
		}
	} else {
		err = s.Rsvps.Insert(ctx, models.Rsvp{
			Name:      input.Name,
			Email:     normalizedEmail,
			Phone:     input.Phone,
			Attending: attending,
			PlusOne:   input.PlusOne,
			Children:  input.Children,
			DateTime:  input.DateTime,
		})
		if err == nil {
			created = true
			log.Printf("✅ Created new RSVP for %s", normalizedEmail)
		}
	}

	if errors.Is(err, ErrDuplicateEmail) {
		// Lost a race with a concurrent submission for the same email; the
		// record exists now, so apply this one as an update.
		_, err = s.Rsvps.UpdateByEmail(ctx, normalizedEmail, fields)
		if err == nil {
			log.Printf("✅ Updated RSVP for %s after duplicate key error", normalizedEmail)
		}
	}
	if err != nil {
		return false, err
	}

	s.Notifier.SendRsvpEmails(input.Name, input.Email, input.Phone, attending, input.PlusOne, input.Children, input.DateTime)

	if _, err := s.Sync.SyncRsvpsToGuests(ctx); err != nil {
		return false, err
	}
	return created, nil
}

// ListRsvps returns every RSVP record, latest response first.
func (s *RsvpService) ListRsvps(ctx context.Context) ([]models.Rsvp, error) {
	rsvps, err := s.Rsvps.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rsvps, func(i, j int) bool { return rsvps[i].DateTime > rsvps[j].DateTime })
	return rsvps, nil
}
