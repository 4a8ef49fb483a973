package student

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"hackhub/app/database"
	"hackhub/app/models"
	"hackhub/app/routes/auth"
	"hackhub/app/routes/view"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ShowSignupPage(c *fiber.Ctx) error {
	colleges, err := database.ListColleges(h.db)
	if err != nil {
		return fmt.Errorf("list colleges: %w", err)
	}

	return view.Render(c, h.sessions, "student/signup", fiber.Map{
		"Title":    "Student Signup - HackHub",
		"Colleges": colleges,
	})
}

func (h *Handler) SignupAPI(c *fiber.Ctx) error {
	student := &models.Student{
		Name:      c.FormValue("name"),
		RollNo:    c.FormValue("roll_no"),
		Year:      c.FormValue("year"),
		Branch:    c.FormValue("branch"),
		CollegeID: c.FormValue("college_id"),
	}
	password := c.FormValue("password")

	if view.Blank(student.Name, student.RollNo, password, student.Year, student.Branch, student.CollegeID) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "All fields are required.", "/student/signup")
	}

	if _, err := database.GetCollegeByID(h.db, student.CollegeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Please choose a valid college.", "/student/signup")
		}
		return fmt.Errorf("load college: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	student.PasswordHash = hash

	err = database.CreateStudent(h.db, student)
	if errors.Is(err, database.ErrDuplicate) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Roll number already exists!", "/student/signup")
	}
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	slog.Info("Student registered", "student_id", student.ID, "college_id", student.CollegeID)
	return view.FlashRedirect(c, h.sessions, auth.FlashSuccess, "Signup successful! Please login.", "/student/login")
}

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, ok := auth.CurrentIdentity(c).(auth.StudentIdentity); ok {
		return c.Redirect("/student/dashboard")
	}

	return view.Render(c, h.sessions, "student/login", fiber.Map{
		"Title": "Student Login - HackHub",
	})
}

func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	rollNo := c.FormValue("roll_no")
	password := c.FormValue("password")

	student, err := database.GetStudentByRollNo(h.db, rollNo)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("load student: %w", err)
	}
	slog.Debug("Student login attempt", "roll_no", rollNo, "found", student != nil)

	if student == nil || !auth.CheckPasswordHash(password, student.PasswordHash) {
		c.Status(fiber.StatusUnauthorized)
		return view.Render(c, h.sessions, "student/login", fiber.Map{
			"Flashes": []auth.Flash{{Kind: auth.FlashDanger, Message: "Invalid credentials!"}},
			"Title":   "Student Login - HackHub",
			"RollNo":  rollNo,
		})
	}

	identity := auth.StudentIdentity{ID: student.ID, Name: student.Name, CollegeID: student.CollegeID}
	if err := h.sessions.SignIn(c, identity); err != nil {
		return err
	}
	return c.Redirect("/student/dashboard")
}

func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		return err
	}
	return c.Redirect("/")
}

func (h *Handler) ShowDashboard(c *fiber.Ctx) error {
	current := auth.CurrentStudent(c)

	student, err := database.GetStudentByID(h.db, current.ID)
	if errors.Is(err, sql.ErrNoRows) {
		if err := h.sessions.SignOut(c); err != nil {
			return err
		}
		return c.Redirect("/student/login")
	}
	if err != nil {
		return fmt.Errorf("load student: %w", err)
	}

	hackathons, err := database.ListHackathonsByCollege(h.db, student.CollegeID)
	if err != nil {
		return fmt.Errorf("list hackathons: %w", err)
	}
	ideas, err := database.ListIdeasForStudent(h.db, student.ID)
	if err != nil {
		return fmt.Errorf("list ideas: %w", err)
	}

	return view.Render(c, h.sessions, "student/dashboard", fiber.Map{
		"Title":      student.Name + " - HackHub",
		"Student":    student,
		"Hackathons": hackathons,
		"Ideas":      ideas,
	})
}

// SubmitIdeaAPI records an idea for one of the student's college hackathons.
func (h *Handler) SubmitIdeaAPI(c *fiber.Ctx) error {
	current := auth.CurrentStudent(c)

	idea := &models.Idea{
		StudentID:   current.ID,
		HackathonID: c.FormValue("hackathon_id"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Prototype:   c.FormValue("prototype"),
	}

	if view.Blank(idea.HackathonID, idea.Title, idea.Description) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Hackathon, title and description are required.", "/student/dashboard")
	}

	hackathon, err := database.GetHackathonByID(h.db, idea.HackathonID)
	if errors.Is(err, sql.ErrNoRows) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Please choose a hackathon.", "/student/dashboard")
	}
	if err != nil {
		return fmt.Errorf("load hackathon: %w", err)
	}
	if hackathon.CollegeID != current.CollegeID {
		return fiber.NewError(fiber.StatusForbidden, "This hackathon belongs to another college.")
	}

	if err := database.CreateIdea(h.db, idea); err != nil {
		return fmt.Errorf("create idea: %w", err)
	}

	return view.FlashRedirect(c, h.sessions, auth.FlashSuccess, "Idea submitted!", "/student/dashboard")
}
