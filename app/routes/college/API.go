package college

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"hackhub/app/database"
	"hackhub/app/models"
	"hackhub/app/routes/auth"
	"hackhub/app/routes/view"
	"hackhub/app/storage"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ShowSignupPage(c *fiber.Ctx) error {
	return view.Render(c, h.sessions, "college/signup", fiber.Map{
		"Title": "College Signup - HackHub",
	})
}

func (h *Handler) SignupAPI(c *fiber.Ctx) error {
	college := &models.College{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Address: c.FormValue("address"),
	}
	password := c.FormValue("password")

	if view.Blank(college.Name, college.Email, password) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Name, email and password are required.", "/college/signup")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	college.PasswordHash = hash

	err = database.CreateCollege(h.db, college)
	if errors.Is(err, database.ErrDuplicate) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "College name already exists!", "/college/signup")
	}
	if err != nil {
		return fmt.Errorf("create college: %w", err)
	}

	slog.Info("College registered", "college_id", college.ID)
	return view.FlashRedirect(c, h.sessions, auth.FlashSuccess, "Signup successful! Please login.", "/college/login")
}

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if _, ok := auth.CurrentIdentity(c).(auth.CollegeIdentity); ok {
		return c.Redirect("/college/dashboard")
	}

	return view.Render(c, h.sessions, "college/login", fiber.Map{
		"Title": "College Login - HackHub",
	})
}

func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	name := c.FormValue("name")
	password := c.FormValue("password")

	college, err := database.GetCollegeByName(h.db, name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("load college: %w", err)
	}
	slog.Debug("College login attempt", "name", name, "found", college != nil)

	if college == nil || !auth.CheckPasswordHash(password, college.PasswordHash) {
		c.Status(fiber.StatusUnauthorized)
		return view.Render(c, h.sessions, "college/login", fiber.Map{
			"Flashes": []auth.Flash{{Kind: auth.FlashDanger, Message: "Invalid credentials!"}},
			"Title":   "College Login - HackHub",
			"Name":    name,
		})
	}

	if err := h.sessions.SignIn(c, auth.CollegeIdentity{ID: college.ID, Name: college.Name}); err != nil {
		return err
	}
	return c.Redirect("/college/dashboard")
}

func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		return err
	}
	return c.Redirect("/")
}

func (h *Handler) ShowDashboard(c *fiber.Ctx) error {
	current := auth.CurrentCollege(c)

	college, err := database.GetCollegeByID(h.db, current.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// The session outlived its college row.
		if err := h.sessions.SignOut(c); err != nil {
			return err
		}
		return c.Redirect("/college/login")
	}
	if err != nil {
		return fmt.Errorf("load college: %w", err)
	}

	hackathons, err := database.ListHackathonsByCollege(h.db, college.ID)
	if err != nil {
		return fmt.Errorf("list hackathons: %w", err)
	}
	judges, err := database.ListJudgesByCollege(h.db, college.ID)
	if err != nil {
		return fmt.Errorf("list judges: %w", err)
	}
	ideas, err := database.ListIdeasForCollege(h.db, college.ID)
	if err != nil {
		return fmt.Errorf("list ideas: %w", err)
	}

	return view.Render(c, h.sessions, "college/dashboard", fiber.Map{
		"Title":      college.Name + " - HackHub",
		"College":    college,
		"Hackathons": hackathons,
		"Judges":     judges,
		"Ideas":      ideas,
	})
}

// PostHackathonAPI posts a hackathon. A poster that cannot be stored never blocks the post.
func (h *Handler) PostHackathonAPI(c *fiber.Ctx) error {
	current := auth.CurrentCollege(c)

	hackathon := &models.Hackathon{
		CollegeID:   current.ID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Prizes:      c.FormValue("prizes"),
	}
	deadline := c.FormValue("deadline")

	if view.Blank(hackathon.Title, hackathon.Description, deadline) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Title, description and deadline are required.", "/college/dashboard")
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(deadline))
	if err != nil {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Deadline must be a date (YYYY-MM-DD).", "/college/dashboard")
	}
	hackathon.Deadline = parsed

	if file, err := c.FormFile("poster"); err == nil && file.Filename != "" {
		url, err := h.storePoster(current.ID, file)
		if err != nil {
			slog.Warn("Poster not stored", "college_id", current.ID, "filename", file.Filename, "error", err)
			if err := h.sessions.Flash(c, auth.FlashDanger, "Poster upload failed: "+err.Error()); err != nil {
				return err
			}
		}
		hackathon.PosterURL = url
	}

	if err := database.CreateHackathon(h.db, hackathon); err != nil {
		return fmt.Errorf("create hackathon: %w", err)
	}

	return view.FlashRedirect(c, h.sessions, auth.FlashSuccess, "Hackathon posted!", "/college/dashboard")
}

func (h *Handler) storePoster(collegeID string, file *multipart.FileHeader) (string, error) {
	if err := storage.CheckPoster(file.Filename, file.Size); err != nil {
		return "", err
	}
	objectPath, err := storage.PosterPath(collegeID, file.Filename)
	if err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.posters.Upload(objectPath, file.Header.Get("Content-Type"), f)
}

func (h *Handler) AddJudgeAPI(c *fiber.Ctx) error {
	current := auth.CurrentCollege(c)

	judge := &models.Judge{
		ID:        c.FormValue("judge_id"),
		Name:      c.FormValue("name"),
		CollegeID: current.ID,
	}
	password := c.FormValue("password")

	if view.Blank(judge.ID, judge.Name, password) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Judge ID, name and password are required.", "/college/dashboard")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	judge.PasswordHash = hash

	err = database.CreateJudge(h.db, judge)
	if errors.Is(err, database.ErrDuplicate) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Judge ID already exists!", "/college/dashboard")
	}
	if err != nil {
		return fmt.Errorf("create judge: %w", err)
	}

	return view.FlashRedirect(c, h.sessions, auth.FlashSuccess, "Judge added!", "/college/dashboard")
}
