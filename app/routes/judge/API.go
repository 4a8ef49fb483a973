package judge

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"hackhub/app/database"
	"hackhub/app/models"
	"hackhub/app/routes/auth"
	"hackhub/app/routes/view"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, ok := auth.CurrentIdentity(c).(auth.JudgeIdentity); ok {
		return c.Redirect("/judge/dashboard")
	}

	return view.Render(c, h.sessions, "judge/login", fiber.Map{
		"Title": "Judge Login - HackHub",
	})
}

func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	judgeID := c.FormValue("judge_id")
	password := c.FormValue("password")

	judge, err := database.GetJudgeByID(h.db, judgeID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("load judge: %w", err)
	}
	slog.Debug("Judge login attempt", "judge_id", judgeID, "found", judge != nil)

	if judge == nil || !auth.CheckPasswordHash(password, judge.PasswordHash) {
		c.Status(fiber.StatusUnauthorized)
		return view.Render(c, h.sessions, "judge/login", fiber.Map{
			"Flashes": []auth.Flash{{Kind: auth.FlashDanger, Message: "Invalid credentials!"}},
			"Title":   "Judge Login - HackHub",
			"JudgeID": judgeID,
		})
	}

	identity := auth.JudgeIdentity{ID: judge.ID, Name: judge.Name, CollegeID: judge.CollegeID}
	if err := h.sessions.SignIn(c, identity); err != nil {
		return err
	}
	return c.Redirect("/judge/dashboard")
}

func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		return err
	}
	return c.Redirect("/")
}

// ShowDashboard lists every idea submitted to the judge's college hackathons.
func (h *Handler) ShowDashboard(c *fiber.Ctx) error {
	current := auth.CurrentJudge(c)

	judge, err := database.GetJudgeByID(h.db, current.ID)
	if errors.Is(err, sql.ErrNoRows) {
		if err := h.sessions.SignOut(c); err != nil {
			return err
		}
		return c.Redirect("/judge/login")
	}
	if err != nil {
		return fmt.Errorf("load judge: %w", err)
	}

	ideas, err := database.ListIdeasForCollege(h.db, judge.CollegeID)
	if err != nil {
		return fmt.Errorf("list ideas: %w", err)
	}

	return view.Render(c, h.sessions, "judge/dashboard", fiber.Map{
		"Title":   "Judge " + judge.Name + " - HackHub",
		"JudgeID": judge.ID,
		"Ideas":   ideas,
	})
}

// SubmitScoreAPI stores the judge's score for an idea, replacing an earlier one.
// Any integer is accepted.
func (h *Handler) SubmitScoreAPI(c *fiber.Ctx) error {
	current := auth.CurrentJudge(c)

	ideaID := c.FormValue("idea_id")
	value, err := strconv.Atoi(strings.TrimSpace(c.FormValue("score")))
	if ideaID == "" || err != nil {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Score must be a whole number.", "/judge/dashboard")
	}

	collegeID, err := database.GetIdeaCollegeID(h.db, ideaID)
	if errors.Is(err, sql.ErrNoRows) {
		return view.FlashRedirect(c, h.sessions, auth.FlashDanger, "Idea not found.", "/judge/dashboard")
	}
	if err != nil {
		return fmt.Errorf("load idea: %w", err)
	}
	if collegeID != current.CollegeID {
		return fiber.NewError(fiber.StatusForbidden, "This idea belongs to another college.")
	}

	score := &models.Score{IdeaID: ideaID, JudgeID: current.ID, Value: value}
	if err := database.UpsertScore(h.db, score); err != nil {
		return fmt.Errorf("save score: %w", err)
	}

	return view.FlashRedirect(c, h.sessions, auth.FlashSuccess, "Score submitted!", "/judge/dashboard")
}
