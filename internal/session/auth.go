package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// AuthErrorKind classifies authentication failures.
type AuthErrorKind int

const (
	InvalidCredentials AuthErrorKind = iota + 1
	NetworkFailure
)

func (k AuthErrorKind) String() string {
	switch k {
	case InvalidCredentials:
		return "invalid credentials"
	case NetworkFailure:
		return "network failure"
	default:
		return fmt.Sprintf("auth error %d", int(k))
	}
}

// Sentinels matched by errors.Is against an *AuthError of the same kind.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNetworkFailure     = errors.New("network failure")
)

// AuthError is a recoverable sign-in failure. The session is left untouched.
type AuthError struct {
	Kind  AuthErrorKind
	Cause error
}

func (e *AuthError) Error() string {
	if e.Cause == nil {
		return "auth: " + e.Kind.String()
	}
	return "auth: " + e.Kind.String() + ": " + e.Cause.Error()
}

func (e *AuthError) Unwrap() error { return e.Cause }

func (e *AuthError) Is(target error) bool {
	switch target {
	case ErrInvalidCredentials:
		return e.Kind == InvalidCredentials
	case ErrNetworkFailure:
		return e.Kind == NetworkFailure
	}
	return false
}

// Authenticator resolves credentials into a user record.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (User, error)
	Register(ctx context.Context, email, password string) (User, error)
}

// DefaultUserName is the display name given to mock users.
const DefaultUserName = "Test user"

// MockAuthenticator accepts any credentials and fabricates a fresh user for
// the email. It is a stand-in for a real identity provider. Only a done ctx
// fails, as NetworkFailure. Register behaves exactly like Authenticate.
type MockAuthenticator struct {
	NewID func() string
	Name  string
}

func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{NewID: uuid.NewString, Name: DefaultUserName}
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, email, password string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, &AuthError{Kind: NetworkFailure, Cause: err}
	}
	email = strings.TrimSpace(email)
	id := uuid.NewString
	if m.NewID != nil {
		id = m.NewID
	}
	name := m.Name
	if name == "" {
		name = DefaultUserName
	}
	return User{ID: id(), Email: email, Name: name}, nil
}

func (m *MockAuthenticator) Register(ctx context.Context, email, password string) (User, error) {
	return m.Authenticate(ctx, email, password)
}
