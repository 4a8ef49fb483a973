package student

import (
	"database/sql"
	"hackhub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the student pages.
type Handler struct {
	db       *sql.DB
	sessions *auth.Sessions
}

func NewHandler(db *sql.DB, sessions *auth.Sessions) *Handler {
	return &Handler{db: db, sessions: sessions}
}

// SetupStudentRoutes sets up student routes
func SetupStudentRoutes(app *fiber.App, h *Handler) {
	student := app.Group("/student")

	student.Get("/signup", h.ShowSignupPage)
	student.Post("/signup", h.SignupAPI)
	student.Get("/login", h.ShowLoginPage)
	student.Post("/login", h.LoginAPI)
	student.Get("/logout", h.LogoutAPI)

	requireStudent := auth.RequireStudent(h.sessions)
	student.Get("/dashboard", requireStudent, h.ShowDashboard)
	student.Post("/dashboard", requireStudent, h.SubmitIdeaAPI)
}
