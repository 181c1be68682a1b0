// Package session holds the signed-in user, if any.
package session

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/jask/makemecoffee/internal/notify"
)

// State is the authentication state of the store.
type State int

const (
	SignedOut State = iota
	SignedIn
)

func (s State) String() string {
	if s == SignedIn {
		return "signed-in"
	}
	return "signed-out"
}

// User is the profile of the signed-in user.
type User struct {
	ID        string
	Email     string
	Name      string
	PhotoRef  string   // empty when no photo was set
	Favorites []string // catalog item ids
}

// IsFavorite reports whether itemID is in the favorites list.
func (u User) IsFavorite(itemID string) bool {
	for _, id := range u.Favorites {
		if id == itemID {
			return true
		}
	}
	return false
}

func (u User) clone() User {
	u.Favorites = append([]string(nil), u.Favorites...)
	return u
}

// Snapshot is the read-only view handed to subscribers.
type Snapshot struct {
	State State
	User  User // zero when signed out
}

// Store owns the session. It is not safe for concurrent use.
type Store struct {
	auth      Authenticator
	user      *User
	observers notify.Observers[Snapshot]
}

// NewStore returns a signed-out store. A nil auth uses the mock authenticator.
func NewStore(auth Authenticator) *Store {
	if auth == nil {
		auth = NewMockAuthenticator()
	}
	return &Store{auth: auth}
}

// Subscribe registers fn to run after every state change.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	return s.observers.Subscribe(fn)
}

// Login signs in with the authenticator. On failure the session is unchanged
// and the returned error is an *AuthError.
func (s *Store) Login(ctx context.Context, email, password string) error {
	u, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return asAuthError(err)
	}
	s.signIn(u)
	return nil
}

// Register creates an account and signs in. With the mock authenticator it
// has the same effect as Login.
func (s *Store) Register(ctx context.Context, email, password string) error {
	u, err := s.auth.Register(ctx, email, password)
	if err != nil {
		return asAuthError(err)
	}
	s.signIn(u)
	return nil
}

// Logout discards the user record.
func (s *Store) Logout() {
	s.user = nil
	s.changed()
}

// UpdatePhoto replaces the photo reference. No-op when signed out.
func (s *Store) UpdatePhoto(ref string) {
	if s.user == nil {
		return
	}
	s.user.PhotoRef = ref
	s.changed()
}

// Rename changes the display name. Blank names and signed-out stores are ignored.
func (s *Store) Rename(name string) {
	name = strings.TrimSpace(name)
	if s.user == nil || name == "" {
		return
	}
	s.user.Name = name
	s.changed()
}

// ToggleFavorite adds or removes itemID from the favorites and reports
// whether it is now a favorite. No-op when signed out.
func (s *Store) ToggleFavorite(itemID string) bool {
	if s.user == nil || itemID == "" {
		return false
	}
	favs := s.user.Favorites
	for i, id := range favs {
		if id == itemID {
			s.user.Favorites = append(favs[:i:i], favs[i+1:]...)
			s.changed()
			return false
		}
	}
	s.user.Favorites = append(favs, itemID)
	s.changed()
	return true
}

// Authenticated reports whether a user is signed in.
func (s *Store) Authenticated() bool { return s.user != nil }

// State returns SignedIn or SignedOut.
func (s *Store) State() State {
	if s.user == nil {
		return SignedOut
	}
	return SignedIn
}

// User returns a copy of the signed-in user.
func (s *Store) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return s.user.clone(), true
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	u, _ := s.User()
	return Snapshot{State: s.State(), User: u}
}

func (s *Store) signIn(u User) {
	u = u.clone()
	s.user = &u
	s.changed()
}

func (s *Store) changed() {
	s.observers.Notify(s.Snapshot())
}

func asAuthError(err error) error {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae
	}
	return &AuthError{Kind: NetworkFailure, Cause: err}
}
