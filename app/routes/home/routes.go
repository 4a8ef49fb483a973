package home

import (
	"hackhub/app/routes/auth"
	"hackhub/app/routes/view"

	"github.com/gofiber/fiber/v2"
)

// SetupHomeRoutes sets up the landing page
func SetupHomeRoutes(app *fiber.App, sessions *auth.Sessions) {
	app.Get("/", func(c *fiber.Ctx) error {
		return view.Render(c, sessions, "index", fiber.Map{
			"Title": "HackHub",
		})
	})
}
