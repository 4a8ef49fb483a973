package view

import (
	"strings"

	"hackhub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// Nav describes the signed-in user for the page header.
type Nav struct {
	SignedIn  bool
	Role      string
	Name      string
	Dashboard string
	Logout    string
}

func NavFor(id auth.Identity) Nav {
	switch v := id.(type) {
	case auth.CollegeIdentity:
		return Nav{SignedIn: true, Role: "College", Name: v.Name, Dashboard: "/college/dashboard", Logout: "/college/logout"}
	case auth.StudentIdentity:
		return Nav{SignedIn: true, Role: "Student", Name: v.Name, Dashboard: "/student/dashboard", Logout: "/student/logout"}
	case auth.JudgeIdentity:
		return Nav{SignedIn: true, Role: "Judge", Name: v.Name, Dashboard: "/judge/dashboard", Logout: "/judge/logout"}
	}
	return Nav{}
}

// Render renders a page inside the main layout, consuming pending flash messages.
// Flashes already present in data are shown first.
func Render(c *fiber.Ctx, sessions *auth.Sessions, name string, data fiber.Map) error {
	flashes, err := sessions.PopFlashes(c)
	if err != nil {
		return err
	}
	if data == nil {
		data = fiber.Map{}
	}
	if direct, ok := data["Flashes"].([]auth.Flash); ok {
		flashes = append(direct, flashes...)
	}
	data["Flashes"] = flashes
	data["Nav"] = NavFor(auth.CurrentIdentity(c))
	if _, ok := data["Title"]; !ok {
		data["Title"] = "HackHub"
	}
	return c.Render(name, data)
}

// FlashRedirect queues a flash message and redirects.
func FlashRedirect(c *fiber.Ctx, sessions *auth.Sessions, kind auth.FlashKind, message, location string) error {
	if err := sessions.Flash(c, kind, message); err != nil {
		return err
	}
	return c.Redirect(location)
}

// Blank reports whether any of the form values is empty or whitespace.
func Blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
