package services

import (
	"context"
	"errors"
	"time"

	"wedding_server/models"
	"wedding_server/utils"
)

// GuestService owns guest create/update/delete. Every mutation keeps the
// RSVP store and the guest-list document in lockstep and decides from the
// attendance diff whether a confirmation email fires.
type GuestService struct {
	Rsvps    RsvpStore
	Guests   GuestStore
	Sync     *SyncService
	Notifier Notifier
}

// ListGuests returns the reconciled guest list. The read path runs a full
// sync so the admin dashboard always sees RSVPs folded in.
func (s *GuestService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	return s.Sync.SyncRsvpsToGuests(ctx)
}

// CreateGuest validates the input, writes the matching RSVP record, appends
// the guest and resyncs. A confirmation email fires only when the new guest
// arrives with an attendance decision.
func (s *GuestService) CreateGuest(ctx context.Context, input models.GuestInput) (*models.Guest, error) {
	if err := ValidateStruct(input); err != nil {
		return nil, err
	}

	guests, err := s.Guests.Load(ctx)
	if err != nil {
		return nil, err
	}

	normalizedEmail := utils.NormalizeEmail(input.Email)
	for _, guest := range guests {
		if utils.NormalizeEmail(guest.Email) == normalizedEmail {
			return nil, ErrEmailExists
		}
	}

	dateTime := ""
	if input.Attending != "" {
		dateTime = time.Now().UTC().Format(time.RFC3339)
	}

	rsvp := models.Rsvp{
		Name:      input.Name,
		Email:     normalizedEmail,
		Phone:     input.Phone,
		GuestOf:   input.GuestOf,
		PlusOne:   input.PlusOne,
		Children:  input.Children,
		Attending: input.Attending,
		DateTime:  dateTime,
	}
	if err := s.Rsvps.Insert(ctx, rsvp); err != nil {
		return nil, err
	}

	maxID := 0
	for _, guest := range guests {
		if guest.ID > maxID {
			maxID = guest.ID
		}
	}

	newGuest := models.Guest{
		ID:        maxID + 1,
		Name:      input.Name,
		Email:     normalizedEmail,
		Phone:     input.Phone,
		Address1:  input.Address1,
		Address2:  input.Address2,
		City:      input.City,
		State:     input.State,
		Zip:       input.Zip,
		GuestOf:   input.GuestOf,
		PlusOne:   input.PlusOne,
		Children:  input.Children,
		Attending: input.Attending,
		DateTime:  dateTime,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	guests = append(guests, newGuest)
	if err := s.Guests.Save(ctx, guests); err != nil {
		return nil, err
	}

	if _, err := s.Sync.SyncRsvpsToGuests(ctx); err != nil {
		return nil, err
	}

	if input.Attending != "" {
		s.Notifier.SendRsvpEmails(input.Name, normalizedEmail, input.Phone, input.Attending, input.PlusOne, input.Children, dateTime)
	}

	return &newGuest, nil
}

// UpdateGuest rewrites the guest at its list position and keeps the RSVP
// record consistent. The confirmation email is gated on the attendance
// decision actually changing, so re-saving a guest with the same Yes/No
// does not re-send it.
func (s *GuestService) UpdateGuest(ctx context.Context, id int, input models.GuestInput) (*models.Guest, error) {
	if err := ValidateStruct(input); err != nil {
		return nil, err
	}

	guests, err := s.Guests.Load(ctx)
	if err != nil {
		return nil, err
	}

	guestIndex := -1
	for i, guest := range guests {
		if guest.ID == id {
			guestIndex = i
			break
		}
	}
	if guestIndex == -1 {
		return nil, ErrGuestNotFound
	}

	normalizedEmail := utils.NormalizeEmail(input.Email)
	for i, guest := range guests {
		if i != guestIndex && utils.NormalizeEmail(guest.Email) == normalizedEmail {
			return nil, ErrEmailExists
		}
	}

	currentGuest := guests[guestIndex]
	currentEmail := utils.NormalizeEmail(currentGuest.Email)

	existingRsvp, err := s.Rsvps.FindByEmail(ctx, currentEmail)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var updatedRsvp *models.Rsvp

	switch {
	case input.Attending == models.AttendingYes || input.Attending == models.AttendingNo:
		fields := rsvpFields(input, normalizedEmail, now)
		if existingRsvp != nil {
			previousAttending := existingRsvp.Attending
			updatedRsvp, err = s.Rsvps.UpdateByEmail(ctx, currentEmail, fields)
			if err == nil && input.Attending != previousAttending {
				s.Notifier.SendRsvpEmails(input.Name, normalizedEmail, input.Phone, input.Attending, input.PlusOne, input.Children, now)
			}
		} else {
			rsvp := models.Rsvp{
				Name:      input.Name,
				Email:     normalizedEmail,
				Phone:     input.Phone,
				GuestOf:   input.GuestOf,
				PlusOne:   input.PlusOne,
				Children:  input.Children,
				Attending: input.Attending,
				DateTime:  now,
			}
			err = s.Rsvps.Insert(ctx, rsvp)
			if err == nil {
				updatedRsvp = &rsvp
				s.Notifier.SendRsvpEmails(input.Name, normalizedEmail, input.Phone, input.Attending, input.PlusOne, input.Children, now)
			}
		}

	case existingRsvp != nil:
		changed := map[string]interface{}{}
		if input.Name != existingRsvp.Name {
			changed["name"] = input.Name
		}
		if normalizedEmail != existingRsvp.Email {
			changed["email"] = normalizedEmail
		}
		if input.Phone != existingRsvp.Phone {
			changed["phone"] = input.Phone
		}
		if input.GuestOf != existingRsvp.GuestOf {
			changed["guestOf"] = input.GuestOf
		}
		if input.PlusOne != existingRsvp.PlusOne {
			changed["plusOne"] = input.PlusOne
		}
		if input.Children != existingRsvp.Children {
			changed["children"] = input.Children
		}
		if len(changed) > 0 {
			changed["email"] = normalizedEmail
			changed["dateTime"] = now
			updatedRsvp, err = s.Rsvps.UpdateByEmail(ctx, currentEmail, changed)
		} else {
			updatedRsvp = existingRsvp
		}

	default:
		// No attendance decision and no record: nothing to upsert.
	}

	if errors.Is(err, ErrDuplicateEmail) {
		// Two updates raced on the same email. The record exists now, so
		// retry as an update keyed by the new email instead of failing.
		updatedRsvp, err = s.Rsvps.UpdateByEmail(ctx, normalizedEmail, rsvpFields(input, normalizedEmail, now))
		if err == nil && (input.Attending == models.AttendingYes || input.Attending == models.AttendingNo) {
			s.Notifier.SendRsvpEmails(input.Name, normalizedEmail, input.Phone, input.Attending, input.PlusOne, input.Children, now)
		}
	}
	if err != nil {
		return nil, err
	}

	dateTime := ""
	switch {
	case updatedRsvp != nil && updatedRsvp.DateTime != "":
		dateTime = updatedRsvp.DateTime
	case currentGuest.DateTime != "":
		dateTime = currentGuest.DateTime
	case input.Attending != "":
		dateTime = now
	}

	updatedGuest := models.Guest{
		ID:        id,
		Name:      input.Name,
		Email:     normalizedEmail,
		Phone:     input.Phone,
		Address1:  input.Address1,
		Address2:  input.Address2,
		City:      input.City,
		State:     input.State,
		Zip:       input.Zip,
		GuestOf:   input.GuestOf,
		PlusOne:   input.PlusOne,
		Children:  input.Children,
		Attending: input.Attending,
		DateTime:  dateTime,
		CreatedAt: currentGuest.CreatedAt,
		UpdatedAt: now,
	}

	guests[guestIndex] = updatedGuest
	if err := s.Guests.Save(ctx, guests); err != nil {
		return nil, err
	}

	if _, err := s.Sync.SyncRsvpsToGuests(ctx); err != nil {
		return nil, err
	}

	return &updatedGuest, nil
}

// DeleteGuest removes the guest and cascades to its RSVP record. The delete
// is consistent by construction, so no resync runs and nothing is emailed.
func (s *GuestService) DeleteGuest(ctx context.Context, id int) error {
	guests, err := s.Guests.Load(ctx)
	if err != nil {
		return err
	}

	guestIndex := -1
	for i, guest := range guests {
		if guest.ID == id {
			guestIndex = i
			break
		}
	}
	if guestIndex == -1 {
		return ErrGuestNotFound
	}

	guestEmail := utils.NormalizeEmail(guests[guestIndex].Email)
	if err := s.Rsvps.DeleteByEmail(ctx, guestEmail); err != nil {
		return err
	}

	guests = append(guests[:guestIndex], guests[guestIndex+1:]...)
	return s.Guests.Save(ctx, guests)
}

func rsvpFields(input models.GuestInput, normalizedEmail, dateTime string) map[string]interface{} {
	return map[string]interface{}{
		"name":      input.Name,
		"email":     normalizedEmail,
		"phone":     input.Phone,
		"guestOf":   input.GuestOf,
		"plusOne":   input.PlusOne,
		"children":  input.Children,
		"attending": input.Attending,
		"dateTime":  dateTime,
	}
}
