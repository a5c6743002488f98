package services

import (
	"context"
	"testing"

	"wedding_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuestService() (*GuestService, *fakeRsvpStore, *memGuestStore, *fakeNotifier) {
	rsvps := newFakeRsvpStore()
	guests := &memGuestStore{}
	notifier := &fakeNotifier{}
	sync := &SyncService{Rsvps: rsvps, Guests: guests}
	svc := &GuestService{Rsvps: rsvps, Guests: guests, Sync: sync, Notifier: notifier}
	return svc, rsvps, guests, notifier
}

func annInput() models.GuestInput {
	return models.GuestInput{
		Name:     "Ann",
		Email:    "ANN@X.com",
		Phone:    "(555) 123-4567",
		Address1: "1 Rd",
		City:     "X",
		State:    "CA",
		Zip:      "90210",
		GuestOf:  models.GuestOfBride,
		Children: 0,
	}
}

func TestCreateGuestNormalizesEmailAndAssignsFirstID(t *testing.T) {
	svc, rsvps, _, notifier := newGuestService()

	guest, err := svc.CreateGuest(context.Background(), annInput())
	require.NoError(t, err)

	assert.Equal(t, 1, guest.ID)
	assert.Equal(t, "ann@x.com", guest.Email)
	assert.Equal(t, "", guest.DateTime, "no attendance decision, no response timestamp")
	assert.NotEmpty(t, guest.CreatedAt)

	// The RSVP record is written in lockstep, still undecided.
	rsvp, err := rsvps.FindByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, rsvp)
	assert.Equal(t, "", rsvp.Attending)
	assert.Equal(t, "", rsvp.DateTime)

	// No decision means no confirmation email.
	assert.Empty(t, notifier.rsvpEmails)
}

func TestCreateGuestWithAttendingStampsDateTimeAndNotifies(t *testing.T) {
	svc, rsvps, _, notifier := newGuestService()

	input := annInput()
	input.Attending = models.AttendingYes
	guest, err := svc.CreateGuest(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, guest.DateTime)
	rsvp, err := rsvps.FindByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, rsvp)
	assert.Equal(t, models.AttendingYes, rsvp.Attending)
	assert.Equal(t, guest.DateTime, rsvp.DateTime)

	require.Len(t, notifier.rsvpEmails, 1)
	assert.Equal(t, "ann@x.com", notifier.rsvpEmails[0].Email)
}

func TestCreateGuestRejectsDuplicateEmailCaseInsensitively(t *testing.T) {
	svc, _, guests, _ := newGuestService()
	ctx := context.Background()

	first, err := svc.CreateGuest(ctx, annInput())
	require.NoError(t, err)

	dup := annInput()
	dup.Email = "ann@x.COM"
	dup.Name = "Other Ann"
	_, err = svc.CreateGuest(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailExists)

	// The first guest is unaffected.
	stored, err := guests.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, first.ID, stored[0].ID)
	assert.Equal(t, "Ann", stored[0].Name)
}

func TestCreateGuestValidation(t *testing.T) {
	svc, _, guests, _ := newGuestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.GuestInput)
	}{
		{"missing name", func(in *models.GuestInput) { in.Name = "" }},
		{"missing address1", func(in *models.GuestInput) { in.Address1 = "" }},
		{"missing city", func(in *models.GuestInput) { in.City = "" }},
		{"missing state", func(in *models.GuestInput) { in.State = "" }},
		{"missing zip", func(in *models.GuestInput) { in.Zip = "" }},
		{"bad email", func(in *models.GuestInput) { in.Email = "not-an-email" }},
		{"bad phone", func(in *models.GuestInput) { in.Phone = "12345" }},
		{"bad guestOf", func(in *models.GuestInput) { in.GuestOf = "Cousin" }},
		{"bad zip", func(in *models.GuestInput) { in.Zip = "902101" }},
		{"too many children", func(in *models.GuestInput) { in.Children = 3 }},
		{"negative children", func(in *models.GuestInput) { in.Children = -1 }},
		{"bad attending", func(in *models.GuestInput) { in.Attending = "Maybe" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := annInput()
			tc.mutate(&input)
			_, err := svc.CreateGuest(ctx, input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}

	// Validation failures never write.
	stored, err := guests.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateGuestAcceptsPhoneVariants(t *testing.T) {
	svc, _, _, _ := newGuestService()
	ctx := context.Background()

	phones := []string{"(555) 123-4567", "555-123-4567", "555.123.4567", "5551234567"}
	for i, phone := range phones {
		input := annInput()
		input.Email = string(rune('a'+i)) + "@x.com"
		input.Phone = phone
		_, err := svc.CreateGuest(ctx, input)
		assert.NoError(t, err, "phone %q should be accepted", phone)
	}
}

func TestUpdateGuestNotFound(t *testing.T) {
	svc, _, _, _ := newGuestService()

	_, err := svc.UpdateGuest(context.Background(), 42, annInput())
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestUpdateGuestRejectsEmailOwnedByAnotherGuest(t *testing.T) {
	svc, _, _, _ := newGuestService()
	ctx := context.Background()

	ann, err := svc.CreateGuest(ctx, annInput())
	require.NoError(t, err)

	bob := annInput()
	bob.Name = "Bob"
	bob.Email = "bob@x.com"
	_, err = svc.CreateGuest(ctx, bob)
	require.NoError(t, err)

	steal := annInput()
	steal.Email = "BOB@x.com"
	_, err = svc.UpdateGuest(ctx, ann.ID, steal)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUpdateGuestFirstDecisionCreatesRsvpAndNotifies(t *testing.T) {
	svc, rsvps, _, notifier := newGuestService()
	ctx := context.Background()

	ann, err := svc.CreateGuest(ctx, annInput())
	require.NoError(t, err)
	// Start from a clean slate: no RSVP record yet for this guest.
	require.NoError(t, rsvps.DeleteByEmail(ctx, "ann@x.com"))

	input := annInput()
	input.Attending = models.AttendingYes
	input.Children = 1
	updated, err := svc.UpdateGuest(ctx, ann.ID, input)
	require.NoError(t, err)

	assert.Equal(t, models.AttendingYes, updated.Attending)
	assert.NotEmpty(t, updated.DateTime)
	assert.NotEmpty(t, updated.UpdatedAt)
	assert.Equal(t, ann.CreatedAt, updated.CreatedAt)

	rsvp, err := rsvps.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, rsvp)
	assert.Equal(t, models.AttendingYes, rsvp.Attending)
	assert.Equal(t, 1, rsvp.Children)

	require.Len(t, notifier.rsvpEmails, 1)
	assert.Equal(t, models.AttendingYes, notifier.rsvpEmails[0].Attending)
}

func TestUpdateGuestUnchangedAttendingSuppressesNotification(t *testing.T) {
	svc, _, _, notifier := newGuestService()
	ctx := context.Background()

	input := annInput()
	input.Attending = models.AttendingYes
	ann, err := svc.CreateGuest(ctx, input)
	require.NoError(t, err)
	require.Len(t, notifier.rsvpEmails, 1)

	// Re-saving the same decision must not re-send the confirmation.
	_, err = svc.UpdateGuest(ctx, ann.ID, input)
	require.NoError(t, err)
	assert.Len(t, notifier.rsvpEmails, 1)

	// Flipping the decision fires again.
	input.Attending = models.AttendingNo
	_, err = svc.UpdateGuest(ctx, ann.ID, input)
	require.NoError(t, err)
	assert.Len(t, notifier.rsvpEmails, 2)
	assert.Equal(t, models.AttendingNo, notifier.rsvpEmails[1].Attending)
}

func TestUpdateGuestWithoutDecisionAppliesFieldDiff(t *testing.T) {
	svc, rsvps, _, notifier := newGuestService()
	ctx := context.Background()

	ann, err := svc.CreateGuest(ctx, annInput())
	require.NoError(t, err)
	before, err := rsvps.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, before)

	input := annInput()
	input.Phone = "555-999-8888"
	updated, err := svc.UpdateGuest(ctx, ann.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "555-999-8888", updated.Phone)

	after, err := rsvps.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "555-999-8888", after.Phone)
	assert.NotEmpty(t, after.DateTime, "a field diff stamps the response time")

	// Field-only edits never email.
	assert.Empty(t, notifier.rsvpEmails)
}

func TestUpdateGuestNoDiffLeavesRsvpUntouched(t *testing.T) {
	svc, rsvps, _, notifier := newGuestService()
	ctx := context.Background()

	ann, err := svc.CreateGuest(ctx, annInput())
	require.NoError(t, err)
	before, err := rsvps.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)

	_, err = svc.UpdateGuest(ctx, ann.ID, annInput())
	require.NoError(t, err)

	after, err := rsvps.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, notifier.rsvpEmails)
}

func TestUpdateGuestEmailChangeMovesRsvpRecord(t *testing.T) {
	svc, rsvps, _, _ := newGuestService()
	ctx := context.Background()

	input := annInput()
	input.Attending = models.AttendingYes
	ann, err := svc.CreateGuest(ctx, input)
	require.NoError(t, err)

	input.Email = "ann.new@x.com"
	updated, err := svc.UpdateGuest(ctx, ann.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "ann.new@x.com", updated.Email)

	old, err := rsvps.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Nil(t, old)
	moved, err := rsvps.FindByEmail(ctx, "ann.new@x.com")
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal(t, models.AttendingYes, moved.Attending)
}

func TestDeleteGuestCascadesToRsvp(t *testing.T) {
	svc, rsvps, guests, _ := newGuestService()
	ctx := context.Background()

	input := annInput()
	input.Attending = models.AttendingYes
	ann, err := svc.CreateGuest(ctx, input)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGuest(ctx, ann.ID))

	rsvp, err := rsvps.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Nil(t, rsvp)

	stored, err := guests.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	// The delete is consistent by construction: a later sync stays empty.
	sync := &SyncService{Rsvps: rsvps, Guests: guests}
	merged, err := sync.SyncRsvpsToGuests(ctx)
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestDeleteGuestNotFound(t *testing.T) {
	svc, _, _, _ := newGuestService()
	assert.ErrorIs(t, svc.DeleteGuest(context.Background(), 99), ErrGuestNotFound)
}

// racingRsvpStore makes the first FindByEmail miss, so the caller's insert
// collides with a record a "concurrent" request wrote in between.
type racingRsvpStore struct {
	*fakeRsvpStore
	missedOnce bool
}

func (s *racingRsvpStore) FindByEmail(ctx context.Context, email string) (*models.Rsvp, error) {
	if !s.missedOnce {
		s.missedOnce = true
		return nil, nil
	}
	return s.fakeRsvpStore.FindByEmail(ctx, email)
}

func TestUpdateGuestRecoversFromRsvpKeyRace(t *testing.T) {
	ctx := context.Background()
	backing := newFakeRsvpStore()
	// A concurrent submission already owns the email.
	require.NoError(t, backing.Insert(ctx, models.Rsvp{Name: "Ann", Email: "ann@x.com", Attending: models.AttendingNo}))

	racing := &racingRsvpStore{fakeRsvpStore: backing}
	guests := &memGuestStore{guests: []models.Guest{{ID: 1, Name: "Ann", Email: "ann@x.com", CreatedAt: "2026-01-01T00:00:00Z"}}}
	notifier := &fakeNotifier{}
	svc := &GuestService{
		Rsvps:    racing,
		Guests:   guests,
		Sync:     &SyncService{Rsvps: racing, Guests: guests},
		Notifier: notifier,
	}

	// The update sees no record, tries to insert, hits the uniqueness
	// constraint, and must fall back to an update by email.
	input := annInput()
	input.Attending = models.AttendingYes
	updated, err := svc.UpdateGuest(ctx, 1, input)
	require.NoError(t, err)
	assert.Equal(t, models.AttendingYes, updated.Attending)

	rsvp, err := backing.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, rsvp)
	assert.Equal(t, models.AttendingYes, rsvp.Attending)
	require.Len(t, notifier.rsvpEmails, 1)
}
