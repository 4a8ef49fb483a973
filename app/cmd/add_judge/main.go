// Command add_judge creates a judge account for an existing college.
//
//	add_judge -college "Acme U" -id judge-7 -name "Jane Doe" -password s3cret
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hackhub/app/config"
	"hackhub/app/database"
	"hackhub/app/logger"
	"hackhub/app/models"
	"hackhub/app/routes/auth"
)

type judgeArgs struct {
	College  string
	ID       string
	Name     string
	Password string
}

func parseArgs(args []string) (judgeArgs, error) {
	var a judgeArgs

	fs := flag.NewFlagSet("add_judge", flag.ContinueOnError)
	fs.StringVar(&a.College, "college", "", "Name of the college the judge belongs to")
	fs.StringVar(&a.ID, "id", "", "Judge ID used to log in")
	fs.StringVar(&a.Name, "name", "", "Display name")
	fs.StringVar(&a.Password, "password", "", "Login password (falls back to JUDGE_PASSWORD)")

	if err := fs.Parse(args); err != nil {
		return judgeArgs{}, err
	}
	if a.Password == "" {
		a.Password = os.Getenv("JUDGE_PASSWORD")
	}
	if a.College == "" || a.ID == "" || a.Name == "" || a.Password == "" {
		return judgeArgs{}, errors.New("-college, -id, -name and -password are required")
	}
	return a, nil
}

func addJudge(db *sql.DB, a judgeArgs) (*models.Judge, error) {
	college, err := database.GetCollegeByName(db, a.College)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("college %q not found", a.College)
	}
	if err != nil {
		return nil, fmt.Errorf("load college: %w", err)
	}

	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	judge := &models.Judge{
		ID:           a.ID,
		Name:         a.Name,
		PasswordHash: hash,
		CollegeID:    college.ID,
	}
	if err := database.CreateJudge(db, judge); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, fmt.Errorf("judge ID %q already exists", a.ID)
		}
		return nil, fmt.Errorf("create judge: %w", err)
	}
	return judge, nil
}

func main() {
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Env)

	db, err := config.OpenDB(cfg)
	if err != nil {
		slog.Error("Cannot establish database connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	judge, err := addJudge(db, a)
	if err != nil {
		slog.Error("Judge not created", "error", err)
		db.Close()
		os.Exit(1)
	}

	fmt.Printf("Judge created successfully: %s (%s) for %s\n", judge.Name, judge.ID, a.College)
}
