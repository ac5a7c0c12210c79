package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"

	"jobify/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/hkdf"
)

const (
	CookieName = "session"
	MaxAge     = 60 * 60 * 24 * 7

	keyUserID = "user_id"
	keyName   = "name"
	keyEmail  = "email"
	keyRole   = "role"

	contextKey = "identity"
	storeKey   = "session_store"
)

// Identity is the user record carried inside the session cookie.
type Identity struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func IdentityOf(u *models.User) *Identity {
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Store is the cookie store together with the attributes of the cookies it
// writes, so the logout cookie matches the one issued at login.
type Store struct {
	sessions.Store
	secure bool
}

func (s *Store) cookieOptions(maxAge int) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewStore builds the signed and encrypted cookie store. Both keys are
// derived from secret so a single SESSION_SECRET configures the store.
func NewStore(secret string, secure bool) (*Store, error) {
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("jobify session"))
	hashKey := make([]byte, 64)
	blockKey := make([]byte, 32)
	if _, err := io.ReadFull(kdf, hashKey); err != nil {
		return nil, fmt.Errorf("derive hash key: %w", err)
	}
	if _, err := io.ReadFull(kdf, blockKey); err != nil {
		return nil, fmt.Errorf("derive block key: %w", err)
	}

	store := &Store{Store: cookie.NewStore(hashKey, blockKey), secure: secure}
	store.Options(store.cookieOptions(MaxAge))
	return store, nil
}

// Middleware installs the session and resolves the caller's identity once
// per request.
func Middleware(store *Store) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		sessions.Sessions(CookieName, store),
		func(c *gin.Context) {
			c.Set(storeKey, store)
			if id := load(sessions.Default(c)); id != nil {
				Set(c, id)
			}
			c.Next()
		},
	}
}

func load(sess sessions.Session) *Identity {
	uid, ok := sess.Get(keyUserID).(uint)
	if !ok || uid == 0 {
		return nil
	}
	name, _ := sess.Get(keyName).(string)
	email, _ := sess.Get(keyEmail).(string)
	role, _ := sess.Get(keyRole).(string)
	return &Identity{ID: uid, Name: name, Email: email, Role: models.UserRole(role)}
}

// Set attaches id to the request context.
func Set(c *gin.Context, id *Identity) {
	c.Set(contextKey, id)
}

// Current returns the identity resolved by Middleware, or nil.
func Current(c *gin.Context) *Identity {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}

// Login writes id into the session cookie.
func Login(c *gin.Context, id *Identity) error {
	sess := sessions.Default(c)
	sess.Set(keyUserID, id.ID)
	sess.Set(keyName, id.Name)
	sess.Set(keyEmail, id.Email)
	sess.Set(keyRole, string(id.Role))
	if err := sess.Save(); err != nil {
		return err
	}
	Set(c, id)
	return nil
}

// Logout clears the session and expires the cookie.
func Logout(c *gin.Context) error {
	v, _ := c.Get(storeKey)
	store, ok := v.(*Store)
	if !ok {
		return errors.New("session store not installed")
	}
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(store.cookieOptions(-1))
	return sess.Save()
}
