package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"wedding_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RsvpStore is the persisted collection of RSVP records, one per
// normalized email. Uniqueness is enforced by the store itself.
type RsvpStore interface {
	// Insert creates a record; ErrDuplicateEmail if the email is taken.
	Insert(ctx context.Context, rsvp models.Rsvp) error
	// UpdateByEmail applies a partial field update and returns the new record.
	UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (*models.Rsvp, error)
	// FindByEmail returns nil, nil when no record exists.
	FindByEmail(ctx context.Context, email string) (*models.Rsvp, error)
	ListAll(ctx context.Context) ([]models.Rsvp, error)
	// DeleteByEmail is a no-op when no record exists.
	DeleteByEmail(ctx context.Context, email string) error
}

// DynamoRsvpStore keeps RSVP records in the Rsvps table, keyed by email.
type DynamoRsvpStore struct {
	Dynamo *DynamoService
}

func (s *DynamoRsvpStore) Insert(ctx context.Context, rsvp models.Rsvp) error {
	err := s.Dynamo.PutItemIfAbsent(ctx, models.Rsvp{}.TableName(), rsvp, "email")
	if errors.Is(err, ErrConditionFailed) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *DynamoRsvpStore) UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (*models.Rsvp, error) {
	// The email is the partition key, so a submission that changes it cannot
	// go through an update expression: the record moves to a new key instead.
	if newEmail, ok := fields["email"].(string); ok {
		if newEmail != email {
			return s.rekey(ctx, email, newEmail, fields)
		}
		delete(fields, "email")
	}
	if len(fields) == 0 {
		return s.FindByEmail(ctx, email)
	}

	updateExpression := "SET"
	expressionNames := make(map[string]string, len(fields))
	expressionValues := make(map[string]types.AttributeValue, len(fields))
	i := 0
	for name, value := range fields {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field '%s': %w", name, err)
		}
		placeholder := fmt.Sprintf("f%d", i)
		if i > 0 {
			updateExpression += ","
		}
		updateExpression += fmt.Sprintf(" #%s = :%s", placeholder, placeholder)
		expressionNames["#"+placeholder] = name
		expressionValues[":"+placeholder] = av
		i++
	}

	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
	attrs, err := s.Dynamo.UpdateItem(ctx, models.Rsvp{}.TableName(), updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	var rsvp models.Rsvp
	if err := attributevalue.UnmarshalMap(attrs, &rsvp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated rsvp: %w", err)
	}
	return &rsvp, nil
}

// rekey moves a record to a new email key: a conditional put under the new
// email (so the table's uniqueness constraint still bites) followed by a
// delete of the old record.
func (s *DynamoRsvpStore) rekey(ctx context.Context, oldEmail, newEmail string, fields map[string]interface{}) (*models.Rsvp, error) {
	current, err := s.FindByEmail(ctx, oldEmail)
	if err != nil {
		return nil, err
	}

	merged := models.Rsvp{}
	if current != nil {
		merged = *current
	}
	applyRsvpFields(&merged, fields)
	merged.Email = newEmail

	if err := s.Insert(ctx, merged); err != nil {
		return nil, err
	}
	if current != nil {
		if err := s.DeleteByEmail(ctx, oldEmail); err != nil {
			return nil, err
		}
	}
	return &merged, nil
}

func applyRsvpFields(rsvp *models.Rsvp, fields map[string]interface{}) {
	for name, value := range fields {
		switch name {
		case "name":
			rsvp.Name, _ = value.(string)
		case "email":
			rsvp.Email, _ = value.(string)
		case "phone":
			rsvp.Phone, _ = value.(string)
		case "guestOf":
			rsvp.GuestOf, _ = value.(string)
		case "plusOne":
			rsvp.PlusOne, _ = value.(string)
		case "children":
			rsvp.Children, _ = value.(int)
		case "attending":
			rsvp.Attending, _ = value.(string)
		case "dateTime":
			rsvp.DateTime, _ = value.(string)
		}
	}
}

func (s *DynamoRsvpStore) FindByEmail(ctx context.Context, email string) (*models.Rsvp, error) {
	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
	item, err := s.Dynamo.GetItem(ctx, models.Rsvp{}.TableName(), key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rsvp models.Rsvp
	if err := attributevalue.UnmarshalMap(item, &rsvp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rsvp: %w", err)
	}
	return &rsvp, nil
}

func (s *DynamoRsvpStore) ListAll(ctx context.Context) ([]models.Rsvp, error) {
	var rsvps []models.Rsvp
	if err := s.Dynamo.ScanAll(ctx, models.Rsvp{}.TableName(), &rsvps); err != nil {
		return nil, err
	}
	// Scan order is not stable; keep the merge deterministic.
	sort.Slice(rsvps, func(i, j int) bool { return rsvps[i].Email < rsvps[j].Email })
	return rsvps, nil
}

func (s *DynamoRsvpStore) DeleteByEmail(ctx context.Context, email string) error {
	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
	return s.Dynamo.DeleteItem(ctx, models.Rsvp{}.TableName(), key)
}
