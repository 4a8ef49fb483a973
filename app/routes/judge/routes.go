package judge

import (
	"database/sql"
	"hackhub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the judge pages.
type Handler struct {
	db       *sql.DB
	sessions *auth.Sessions
}

func NewHandler(db *sql.DB, sessions *auth.Sessions) *Handler {
	return &Handler{db: db, sessions: sessions}
}

// SetupJudgeRoutes sets up judge routes. Judges are created by their college, so there is no signup.
func SetupJudgeRoutes(app *fiber.App, h *Handler) {
	judge := app.Group("/judge")

	judge.Get("/login", h.ShowLoginPage)
	judge.Post("/login", h.LoginAPI)
	judge.Get("/logout", h.LogoutAPI)

	requireJudge := auth.RequireJudge(h.sessions)
	judge.Get("/dashboard", requireJudge, h.ShowDashboard)
	judge.Post("/dashboard", requireJudge, h.SubmitScoreAPI)
}
