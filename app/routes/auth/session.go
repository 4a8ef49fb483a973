package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CookieName is the cookie carrying the opaque session id.
const CookieName = "hackhub_session"

type Role string

const (
	RoleCollege Role = "college"
	RoleStudent Role = "student"
	RoleJudge   Role = "judge"
)

// Identity is who the current browser is signed in as. It is one of
// Anonymous, CollegeIdentity, StudentIdentity or JudgeIdentity.
type Identity interface {
	isIdentity()
}

type Anonymous struct{}

type CollegeIdentity struct {
	ID   string
	Name string
}

type StudentIdentity struct {
	ID        string
	Name      string
	CollegeID string
}

type JudgeIdentity struct {
	ID        string
	Name      string
	CollegeID string
}

func (Anonymous) isIdentity()       {}
func (CollegeIdentity) isIdentity() {}
func (StudentIdentity) isIdentity() {}
func (JudgeIdentity) isIdentity()   {}

// session keys
const (
	keyRole      = "role"
	keyID        = "id"
	keyName      = "name"
	keyCollegeID = "college_id"
	keyFlashes   = "flashes"
)

var identityKeys = []string{keyRole, keyID, keyName, keyCollegeID}

func encodeIdentity(id Identity) map[string]string {
	switch v := id.(type) {
	case CollegeIdentity:
		return map[string]string{keyRole: string(RoleCollege), keyID: v.ID, keyName: v.Name}
	case StudentIdentity:
		return map[string]string{keyRole: string(RoleStudent), keyID: v.ID, keyName: v.Name, keyCollegeID: v.CollegeID}
	case JudgeIdentity:
		return map[string]string{keyRole: string(RoleJudge), keyID: v.ID, keyName: v.Name, keyCollegeID: v.CollegeID}
	}
	return nil
}

// decodeIdentity rebuilds the identity from session values. Anything incomplete is Anonymous.
func decodeIdentity(get func(key string) string) Identity {
	id := get(keyID)
	if id == "" {
		return Anonymous{}
	}

	switch Role(get(keyRole)) {
	case RoleCollege:
		return CollegeIdentity{ID: id, Name: get(keyName)}
	case RoleStudent:
		if collegeID := get(keyCollegeID); collegeID != "" {
			return StudentIdentity{ID: id, Name: get(keyName), CollegeID: collegeID}
		}
	case RoleJudge:
		if collegeID := get(keyCollegeID); collegeID != "" {
			return JudgeIdentity{ID: id, Name: get(keyName), CollegeID: collegeID}
		}
	}
	return Anonymous{}
}

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashDanger  FlashKind = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Sessions keeps identities and flash messages in server-side sessions.
type Sessions struct {
	store *session.Store
}

// NewStore creates the in-memory session store. The cookie only carries a random id.
func NewStore(ttl time.Duration, secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     ttl,
		KeyLookup:      "cookie:" + CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}

func NewSessions(store *session.Store) *Sessions {
	return &Sessions{store: store}
}

// Identity returns the identity stored in the request's session.
func (s *Sessions) Identity(c *fiber.Ctx) (Identity, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeIdentity(func(key string) string {
		v, _ := sess.Get(key).(string)
		return v
	}), nil
}

// SignIn replaces whatever identity the session held. The session id is
// regenerated so a pre-login id cannot be reused.
func (s *Sessions) SignIn(c *fiber.Ctx, id Identity) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("regenerate session: %w", err)
	}

	for _, key := range identityKeys {
		sess.Delete(key)
	}
	for key, value := range encodeIdentity(id) {
		sess.Set(key, value)
	}
	return sess.Save()
}

// SignOut drops the session entirely.
func (s *Sessions) SignOut(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	return sess.Destroy()
}

// Flash queues a message for the next rendered page.
func (s *Sessions) Flash(c *fiber.Ctx, kind FlashKind, message string) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	flashes := readFlashes(sess)
	flashes = append(flashes, Flash{Kind: kind, Message: message})
	raw, err := json.Marshal(flashes)
	if err != nil {
		return err
	}
	sess.Set(keyFlashes, string(raw))
	return sess.Save()
}

// PopFlashes returns the queued messages and clears them.
func (s *Sessions) PopFlashes(c *fiber.Ctx) ([]Flash, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	flashes := readFlashes(sess)
	if len(flashes) == 0 {
		return nil, nil
	}
	sess.Delete(keyFlashes)
	return flashes, sess.Save()
}

func readFlashes(sess *session.Session) []Flash {
	raw, _ := sess.Get(keyFlashes).(string)
	if raw == "" {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		return nil
	}
	return flashes
}
