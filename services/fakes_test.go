package services

import (
	"context"
	"sort"
	"sync"

	"wedding_server/models"
)

// fakeRsvpStore is an in-memory RsvpStore mirroring the DynamoDB
// implementation's semantics, including the uniqueness constraint and the
// rekey-on-email-change behavior.
type fakeRsvpStore struct {
	mu      sync.Mutex
	records map[string]models.Rsvp
}

func newFakeRsvpStore() *fakeRsvpStore {
	return &fakeRsvpStore{records: make(map[string]models.Rsvp)}
}

func (s *fakeRsvpStore) Insert(_ context.Context, rsvp models.Rsvp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[rsvp.Email]; exists {
		return ErrDuplicateEmail
	}
	s.records[rsvp.Email] = rsvp
	return nil
}

func (s *fakeRsvpStore) UpdateByEmail(_ context.Context, email string, fields map[string]interface{}) (*models.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newEmail, ok := fields["email"].(string); ok && newEmail != email {
		if _, taken := s.records[newEmail]; taken {
			return nil, ErrDuplicateEmail
		}
		merged := s.records[email]
		applyRsvpFields(&merged, fields)
		merged.Email = newEmail
		delete(s.records, email)
		s.records[newEmail] = merged
		return &merged, nil
	}

	merged := s.records[email]
	merged.Email = email
	applyRsvpFields(&merged, fields)
	s.records[email] = merged
	return &merged, nil
}

func (s *fakeRsvpStore) FindByEmail(_ context.Context, email string) (*models.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rsvp, ok := s.records[email]; ok {
		return &rsvp, nil
	}
	return nil, nil
}

func (s *fakeRsvpStore) ListAll(_ context.Context) ([]models.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rsvps := make([]models.Rsvp, 0, len(s.records))
	for _, rsvp := range s.records {
		rsvps = append(rsvps, rsvp)
	}
	sort.Slice(rsvps, func(i, j int) bool { return rsvps[i].Email < rsvps[j].Email })
	return rsvps, nil
}

func (s *fakeRsvpStore) DeleteByEmail(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, email)
	return nil
}

// memGuestStore keeps the guest list in memory for tests that do not care
// about the on-disk document.
type memGuestStore struct {
	guests []models.Guest
	saves  int
}

func (s *memGuestStore) Load(_ context.Context) ([]models.Guest, error) {
	out := make([]models.Guest, len(s.guests))
	copy(out, s.guests)
	return out, nil
}

func (s *memGuestStore) Save(_ context.Context, guests []models.Guest) error {
	s.guests = make([]models.Guest, len(guests))
	copy(s.guests, guests)
	s.saves++
	return nil
}

// rsvpEmail records one SendRsvpEmails call.
type rsvpEmail struct {
	Name      string
	Email     string
	Attending string
}

// fakeNotifier records notification calls instead of dialing SMTP.
type fakeNotifier struct {
	rsvpEmails    []rsvpEmail
	contactEmails []string
	helpEmails    []string
}

func (n *fakeNotifier) SendRsvpEmails(name, email, _ string, attending, _ string, _ int, _ string) {
	n.rsvpEmails = append(n.rsvpEmails, rsvpEmail{Name: name, Email: email, Attending: attending})
}

func (n *fakeNotifier) SendContactEmails(_, email, _ string) {
	n.contactEmails = append(n.contactEmails, email)
}

func (n *fakeNotifier) SendHelpEmails(_, _, email, _, _, _ string) {
	n.helpEmails = append(n.helpEmails, email)
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (s *fakeUserStore) Insert(_ context.Context, user models.User) error {
	if _, exists := s.users[user.Username]; exists {
		return ErrUserExists
	}
	s.users[user.Username] = user
	return nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if user, ok := s.users[username]; ok {
		return &user, nil
	}
	return nil, nil
}
