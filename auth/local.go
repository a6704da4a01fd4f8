// Package auth implements credential registration, login and the active
// session record. Registration hashes passwords with bcrypt; login collapses
// every credential failure into one generic error.
package auth

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/errs"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"golang.org/x/crypto/bcrypt"
)

func loadUsers(kv *storage.KV) []models.User {
	var users []models.User
	if ok, err := kv.Durable.Get(storage.KeyUsers, &users); !ok || err != nil {
		return nil
	}
	return users
}

func saveUsers(kv *storage.KV, users []models.User) error {
	return kv.Durable.Set(storage.KeyUsers, users)
}

// AllUsers returns every registered user, registration order preserved.
func AllUsers(kv *storage.KV) []models.User {
	return loadUsers(kv)
}

// validatePassword enforces the complexity policy: at least 8 characters
// with an uppercase letter, a lowercase letter, a digit and a symbol.
func validatePassword(pw string) error {
	if len(pw) < 8 {
		return errs.Validation("password", "must be at least 8 characters")
	}
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return errs.Validation("password", "must contain an uppercase letter, a lowercase letter, a digit and a symbol")
	}
	return nil
}

// Register validates the form, appends the new user and logs them straight
// in. Emails are unique case-insensitively; nothing is written when any
// check fails.
func Register(kv *storage.KV, name, email, password, confirm string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, errs.Validation("name", "name is required")
	}
	if email == "" {
		return nil, errs.Validation("email", "email is required")
	}
	if password == "" {
		return nil, errs.Validation("password", "password is required")
	}
	if password != confirm {
		return nil, errs.Validation("confirm_password", "passwords do not match")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	users := loadUsers(kv)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, errs.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	users = append(users, user)
	if err := saveUsers(kv, users); err != nil {
		return nil, err
	}
	if err := establishSession(kv, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login matches the case-folded email and the stored bcrypt hash. Unknown
// email and wrong password are indistinguishable to the caller.
func Login(kv *storage.KV, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	for _, u := range loadUsers(kv) {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		if err := establishSession(kv, u); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, errs.ErrInvalidCredentials
}

func establishSession(kv *storage.KV, user models.User) error {
	return kv.Session.Set(storage.SessionKey(user.Email), models.Session{
		Email:     user.Email,
		Name:      user.Name,
		LoginTime: time.Now(),
	})
}

// Logout drops the session record. Logging out twice is a no-op.
func Logout(kv *storage.KV, email string) {
	_ = kv.Session.Remove(storage.SessionKey(strings.ToLower(email)))
}

// CurrentUser resolves the active session back to its user record. A session
// whose user was deleted out-of-band reads as logged out.
func CurrentUser(kv *storage.KV, email string) (*models.User, bool) {
	var sess models.Session
	if ok, err := kv.Session.Get(storage.SessionKey(strings.ToLower(email)), &sess); !ok || err != nil {
		return nil, false
	}
	for _, u := range loadUsers(kv) {
		if strings.EqualFold(u.Email, sess.Email) {
			return &u, true
		}
	}
	return nil, false
}
