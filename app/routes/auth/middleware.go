package auth

import (
	"github.com/gofiber/fiber/v2"
)

const localsIdentity = "identity"

// RequireCollege lets only college sessions through; everyone else is sent to the college login.
func RequireCollege(s *Sessions) fiber.Handler {
	return require[CollegeIdentity](s, "/college/login")
}

// RequireStudent lets only student sessions through.
func RequireStudent(s *Sessions) fiber.Handler {
	return require[StudentIdentity](s, "/student/login")
}

// RequireJudge lets only judge sessions through.
func RequireJudge(s *Sessions) fiber.Handler {
	return require[JudgeIdentity](s, "/judge/login")
}

func require[T Identity](s *Sessions, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := s.Identity(c)
		if err != nil {
			return err
		}

		current, ok := id.(T)
		if !ok {
			return c.Redirect(loginPath)
		}

		c.Locals(localsIdentity, current)
		return c.Next()
	}
}

// LoadIdentity exposes the session identity to every handler and view,
// Anonymous when nobody is signed in.
func LoadIdentity(s *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := s.Identity(c)
		if err != nil {
			return err
		}
		c.Locals(localsIdentity, id)
		return c.Next()
	}
}

// CurrentIdentity returns the identity set by LoadIdentity or a Require* guard.
func CurrentIdentity(c *fiber.Ctx) Identity {
	if id, ok := c.Locals(localsIdentity).(Identity); ok {
		return id
	}
	return Anonymous{}
}

func CurrentCollege(c *fiber.Ctx) CollegeIdentity {
	return c.Locals(localsIdentity).(CollegeIdentity)
}

func CurrentStudent(c *fiber.Ctx) StudentIdentity {
	return c.Locals(localsIdentity).(StudentIdentity)
}

func CurrentJudge(c *fiber.Ctx) JudgeIdentity {
	return c.Locals(localsIdentity).(JudgeIdentity)
}
