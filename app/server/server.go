package server

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hackhub/app/routes/auth"
	"hackhub/app/routes/college"
	"hackhub/app/routes/home"
	"hackhub/app/routes/judge"
	"hackhub/app/routes/student"
	"hackhub/app/routes/view"
	"hackhub/app/storage"
	"hackhub/app/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
)

// Options are the shared dependencies handed to every route group.
type Options struct {
	DB       *sql.DB
	Posters  storage.PosterStore
	Sessions *session.Store
	// AccessLog enables the per-request log line.
	AccessLog bool
}

// New builds the Fiber app with templates, middleware and all routes.
func New(opts Options) *fiber.App {
	engine := html.NewFileSystem(http.FS(templates.FS), ".html")
	engine.AddFunc("date", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
		// Room for the multipart envelope around a maximum-size poster.
		BodyLimit: storage.MaxPosterSize + 1<<20,
	})

	sessions := auth.NewSessions(opts.Sessions)

	// Middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New())
	app.Use(auth.LoadIdentity(sessions))

	// Routes
	home.SetupHomeRoutes(app, sessions)
	college.SetupCollegeRoutes(app, college.NewHandler(opts.DB, sessions, opts.Posters))
	student.SetupStudentRoutes(app, student.NewHandler(opts.DB, sessions))
	judge.SetupJudgeRoutes(app, judge.NewHandler(opts.DB, sessions))

	// Catch-all route for 404 errors (must be last)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

// customErrorHandler renders an error page for anything a handler returned.
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "We're experiencing technical difficulties. Please try again later."

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	var title string
	switch code {
	case fiber.StatusNotFound:
		title = "Page Not Found"
	case fiber.StatusForbidden:
		title = "Access Forbidden"
	case fiber.StatusRequestEntityTooLarge:
		title = "Upload Too Large"
		message = "The upload exceeds the 5 MB limit."
	case fiber.StatusInternalServerError:
		title = "Internal Server Error"
	default:
		title = "An Error Occurred"
	}

	renderErr := c.Status(code).Render("error", fiber.Map{
		"Title":        title + " - HackHub",
		"Nav":          view.NavFor(auth.CurrentIdentity(c)),
		"ErrorCode":    code,
		"ErrorTitle":   title,
		"ErrorMessage": message,
	})
	if renderErr != nil {
		slog.Error("Failed to render error page", "error", renderErr)
		return c.Status(code).SendString(message)
	}
	return nil
}
