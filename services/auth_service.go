package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wedding_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 30 * 24 * time.Hour

// UserStore is the persisted collection of admin accounts, keyed by username.
type UserStore interface {
	// Insert creates an account; ErrUserExists if the username is taken.
	Insert(ctx context.Context, user models.User) error
	// FindByUsername returns nil, nil when no account exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// DynamoUserStore keeps admin accounts in the Users table.
type DynamoUserStore struct {
	Dynamo *DynamoService
}

func (s *DynamoUserStore) Insert(ctx context.Context, user models.User) error {
	err := s.Dynamo.PutItemIfAbsent(ctx, models.User{}.TableName(), user, "username")
	if errors.Is(err, ErrConditionFailed) {
		return ErrUserExists
	}
	return err
}

func (s *DynamoUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"username": &types.AttributeValueMemberS{Value: username},
	}
	item, err := s.Dynamo.GetItem(ctx, models.User{}.TableName(), key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// Claims is the payload carried by the admin bearer token.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService handles admin registration, login and token verification.
type AuthService struct {
	Users     UserStore
	JWTSecret string
}

func (s *AuthService) Register(ctx context.Context, creds models.Credentials) error {
	if err := ValidateStruct(creds); err != nil {
		return err
	}

	existing, err := s.Users.FindByUsername(ctx, creds.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.Users.Insert(ctx, models.User{
		ID:       uuid.NewString(),
		Username: creds.Username,
		Password: string(hash),
	})
}

func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := ValidateStruct(creds); err != nil {
		return "", err
	}

	user, err := s.Users.FindByUsername(ctx, creds.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:       user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	})

	signed, err := token.SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GetUser looks up the authenticated account by its token claims.
func (s *AuthService) GetUser(ctx context.Context, claims *Claims) (*models.User, error) {
	user, err := s.Users.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ID != claims.ID {
		return nil, ErrUserNotFound
	}
	return user, nil
}

type contextKey string

const claimsContextKey contextKey = "authClaims"

// ContextWithClaims attaches verified token claims to a request context.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext retrieves the claims stored by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}
