package services

import (
	"context"
	"log"
	"time"

	"wedding_server/models"
	"wedding_server/utils"
)

// SyncService merges the RSVP record store into the guest-list document so
// both stay consistent: a guest's RSVP fields always reflect the latest
// record, and every RSVP without a guest gets a minimal guest entry.
type SyncService struct {
	Rsvps  RsvpStore
	Guests GuestStore
}

// SyncRsvpsToGuests rebuilds the guest list from both stores and replaces
// the persisted document with the merged result. The operation is
// idempotent: with no intervening writes a second run produces identical
// output.
func (s *SyncService) SyncRsvpsToGuests(ctx context.Context) ([]models.Guest, error) {
	guests, err := s.Guests.Load(ctx)
	if err != nil {
		return nil, err
	}

	rsvps, err := s.Rsvps.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Fetched RSVPs: %d", len(rsvps))

	rsvpByEmail := make(map[string]models.Rsvp, len(rsvps))
	for _, rsvp := range rsvps {
		rsvpByEmail[utils.NormalizeEmail(rsvp.Email)] = rsvp
	}

	updated := make([]models.Guest, 0, len(guests))
	processed := make(map[string]bool, len(guests))

	// Seed the id counter once; synthesized guests below increment it so a
	// pass that adds several RSVPs never hands out the same id twice.
	nextID := 0
	for _, guest := range guests {
		if guest.ID > nextID {
			nextID = guest.ID
		}
	}

	for _, guest := range guests {
		email := utils.NormalizeEmail(guest.Email)
		if rsvp, ok := rsvpByEmail[email]; ok {
			guest.Name = rsvp.Name
			guest.Phone = rsvp.Phone
			if rsvp.GuestOf != "" {
				guest.GuestOf = rsvp.GuestOf
			}
			guest.PlusOne = rsvp.PlusOne
			guest.Children = rsvp.Children
			guest.Attending = rsvp.Attending
			guest.DateTime = rsvp.DateTime
		}
		if guest.Children < 0 {
			guest.Children = 0
		}
		updated = append(updated, guest)
		processed[email] = true
	}

	for _, rsvp := range rsvps {
		email := utils.NormalizeEmail(rsvp.Email)
		if processed[email] {
			continue
		}
		nextID++
		children := rsvp.Children
		if children < 0 {
			children = 0
		}
		updated = append(updated, models.Guest{
			ID:        nextID,
			Name:      rsvp.Name,
			Email:     rsvp.Email,
			Phone:     rsvp.Phone,
			GuestOf:   rsvp.GuestOf,
			PlusOne:   rsvp.PlusOne,
			Children:  children,
			Attending: rsvp.Attending,
			DateTime:  rsvp.DateTime,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
		processed[email] = true
		log.Printf("✅ Added new guest from RSVP: %s", rsvp.Email)
	}

	if err := s.Guests.Save(ctx, updated); err != nil {
		return nil, err
	}
	log.Println("✅ Synced RSVPs to guests")
	return updated, nil
}
