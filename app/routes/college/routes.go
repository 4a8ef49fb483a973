package college

import (
	"database/sql"
	"hackhub/app/routes/auth"
	"hackhub/app/storage"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the college pages.
type Handler struct {
	db       *sql.DB
	sessions *auth.Sessions
	posters  storage.PosterStore
}

func NewHandler(db *sql.DB, sessions *auth.Sessions, posters storage.PosterStore) *Handler {
	return &Handler{db: db, sessions: sessions, posters: posters}
}

// SetupCollegeRoutes sets up college routes
func SetupCollegeRoutes(app *fiber.App, h *Handler) {
	college := app.Group("/college")

	// Public routes
	college.Get("/signup", h.ShowSignupPage)
	college.Post("/signup", h.SignupAPI)
	college.Get("/login", h.ShowLoginPage)
	college.Post("/login", h.LoginAPI)
	college.Get("/logout", h.LogoutAPI)

	// Protected routes
	requireCollege := auth.RequireCollege(h.sessions)
	college.Get("/dashboard", requireCollege, h.ShowDashboard)
	college.Post("/dashboard", requireCollege, h.PostHackathonAPI)
	college.Post("/judge", requireCollege, h.AddJudgeAPI)
}
