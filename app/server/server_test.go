package server

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"hackhub/app/routes/auth"
	"hackhub/app/testutil"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type upload struct {
	path        string
	contentType string
	body        string
}

// fakePosters records uploads instead of talking to object storage.
type fakePosters struct {
	mu      sync.Mutex
	uploads []upload
	err     error
}

func (f *fakePosters) Upload(objectPath, contentType string, body io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	data, _ := io.ReadAll(body)
	f.uploads = append(f.uploads, upload{objectPath, contentType, string(data)})
	return "https://cdn.example/hackathon-posters/" + objectPath, nil
}

func (f *fakePosters) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

type env struct {
	app     *fiber.App
	db      *sql.DB
	posters *fakePosters
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.OpenTestDB(t)
	posters := &fakePosters{}
	app := New(Options{
		DB:       db,
		Posters:  posters,
		Sessions: auth.NewStore(time.Hour, false),
	})
	return &env{app: app, db: db, posters: posters}
}

// client is one browser: it keeps the session cookie between requests.
type client struct {
	t      *testing.T
	app    *fiber.App
	cookie string
}

func (e *env) client(t *testing.T) *client {
	return &client{t: t, app: e.app}
}

type response struct {
	status   int
	location string
	body     string
}

func (c *client) do(req *http.Request) response {
	c.t.Helper()
	if c.cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: c.cookie})
	}
	resp, err := c.app.Test(req, -1)
	if err != nil {
		c.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	for _, ck := range resp.Cookies() {
		if ck.Name != auth.CookieName {
			continue
		}
		if ck.Value == "" || ck.MaxAge < 0 || (!ck.Expires.IsZero() && ck.Expires.Before(time.Now())) {
			c.cookie = ""
		} else {
			c.cookie = ck.Value
		}
	}

	body, _ := io.ReadAll(resp.Body)
	return response{status: resp.StatusCode, location: resp.Header.Get("Location"), body: string(body)}
}

func (c *client) get(path string) response {
	c.t.Helper()
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) response {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

type poster struct {
	filename    string
	contentType string
	data        []byte
}

func (c *client) postMultipart(path string, form url.Values, file *poster) response {
	c.t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range form {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				c.t.Fatalf("write field: %v", err)
			}
		}
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="poster"; filename="%s"`, file.filename))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			c.t.Fatalf("create part: %v", err)
		}
		part.Write(file.data)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

func expectRedirect(t *testing.T, r response, location string) {
	t.Helper()
	if r.status != fiber.StatusFound || r.location != location {
		t.Fatalf("got %d -> %q, want 302 -> %q (body: %.200s)", r.status, r.location, location, r.body)
	}
}

func expectBody(t *testing.T, r response, substrings ...string) {
	t.Helper()
	for _, s := range substrings {
		if !strings.Contains(r.body, s) {
			t.Errorf("body does not contain %q", s)
		}
	}
}

func expectNotInBody(t *testing.T, r response, substrings ...string) {
	t.Helper()
	for _, s := range substrings {
		if strings.Contains(r.body, s) {
			t.Errorf("body unexpectedly contains %q", s)
		}
	}
}

func (e *env) count(t *testing.T, query string, args ...interface{}) int {
	t.Helper()
	var n int
	if err := e.db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count %q: %v", query, err)
	}
	return n
}

func (e *env) lookup(t *testing.T, query string, args ...interface{}) string {
	t.Helper()
	var v string
	if err := e.db.QueryRow(query, args...).Scan(&v); err != nil {
		t.Fatalf("lookup %q: %v", query, err)
	}
	return v
}

// signUpCollege registers and logs in a college through the HTTP surface.
func (e *env) signUpCollege(t *testing.T, name, password string) (*client, string) {
	t.Helper()
	c := e.client(t)
	expectRedirect(t, c.post("/college/signup", url.Values{
		"name": {name}, "email": {"office@example.edu"}, "address": {"Main St"}, "password": {password},
	}), "/college/login")
	expectRedirect(t, c.post("/college/login", url.Values{"name": {name}, "password": {password}}), "/college/dashboard")
	return c, e.lookup(t, `SELECT id FROM colleges WHERE name = $1`, name)
}

func (e *env) signUpStudent(t *testing.T, collegeID, rollNo, password string) *client {
	t.Helper()
	c := e.client(t)
	expectRedirect(t, c.post("/student/signup", url.Values{
		"name": {"Student " + rollNo}, "roll_no": {rollNo}, "password": {password},
		"year": {"2"}, "branch": {"CSE"}, "college_id": {collegeID},
	}), "/student/login")
	expectRedirect(t, c.post("/student/login", url.Values{"roll_no": {rollNo}, "password": {password}}), "/student/dashboard")
	return c
}

func (e *env) loginJudge(t *testing.T, judgeID, password string) *client {
	t.Helper()
	c := e.client(t)
	expectRedirect(t, c.post("/judge/login", url.Values{"judge_id": {judgeID}, "password": {password}}), "/judge/dashboard")
	return c
}

func TestEndToEndScenario(t *testing.T) {
	e := newEnv(t)

	college, acmeID := e.signUpCollege(t, "Acme U", "acme-pass")
	expectRedirect(t, college.postMultipart("/college/dashboard", url.Values{
		"title": {"HackX"}, "description": {"Build something"}, "deadline": {"2025-01-01"}, "prizes": {"$1000"},
	}, nil), "/college/dashboard")
	expectBody(t, college.get("/college/dashboard"), "Hackathon posted!", "HackX", "2025-01-01")

	student := e.signUpStudent(t, acmeID, "R-42", "student-pass")
	dash := student.get("/student/dashboard")
	expectBody(t, dash, "HackX")

	hackID := e.lookup(t, `SELECT id FROM hackathons WHERE title = 'HackX'`)
	expectRedirect(t, student.post("/student/dashboard", url.Values{
		"hackathon_id": {hackID}, "title": {"App Idea"}, "description": {"An app"}, "prototype": {"https://proto.example"},
	}), "/student/dashboard")
	expectBody(t, student.get("/student/dashboard"), "Idea submitted!", "App Idea", "Not scored yet")

	expectRedirect(t, college.post("/college/judge", url.Values{
		"judge_id": {"judge-7"}, "name": {"Jane"}, "password": {"judge-pass"},
	}), "/college/dashboard")
	expectBody(t, college.get("/college/dashboard"), "Judge added!", "judge-7", "App Idea")

	judge := e.loginJudge(t, "judge-7", "judge-pass")
	expectBody(t, judge.get("/judge/dashboard"), "App Idea", "HackX")

	ideaID := e.lookup(t, `SELECT id FROM ideas WHERE title = 'App Idea'`)
	expectRedirect(t, judge.post("/judge/dashboard", url.Values{"idea_id": {ideaID}, "score": {"8"}}), "/judge/dashboard")

	judgeView := judge.get("/judge/dashboard")
	expectBody(t, judgeView, "Score submitted!", `<span class="score">8</span>`, `value="8"`)
	expectBody(t, student.get("/student/dashboard"), `judge-7: <span class="score">8</span>`)
	expectBody(t, college.get("/college/dashboard"), "Jane: 8")
}

func TestScoreUpsertKeepsLatest(t *testing.T) {
	e := newEnv(t)
	college, acmeID := e.signUpCollege(t, "Acme U", "pw")
	hack := testutil.CreateTestHackathon(t, e.db, acmeID, "HackX")
	studentID := testutil.CreateTestStudent(t, e.db, acmeID, "R-1", "unused").ID
	idea := testutil.CreateTestIdea(t, e.db, studentID, hack.ID, "App Idea")
	expectRedirect(t, college.post("/college/judge", url.Values{
		"judge_id": {"j1"}, "name": {"J"}, "password": {"jp"},
	}), "/college/dashboard")

	judge := e.loginJudge(t, "j1", "jp")
	for _, score := range []string{"3", "8", "-2", "11"} {
		expectRedirect(t, judge.post("/judge/dashboard", url.Values{"idea_id": {idea.ID}, "score": {score}}), "/judge/dashboard")
	}

	if n := e.count(t, `SELECT COUNT(*) FROM scores WHERE idea_id = $1 AND judge_id = 'j1'`, idea.ID); n != 1 {
		t.Fatalf("got %d score rows, want 1", n)
	}
	if v := e.lookup(t, `SELECT CAST(score AS TEXT) FROM scores WHERE idea_id = $1`, idea.ID); v != "11" {
		t.Errorf("stored score = %s, want 11", v)
	}

	r := judge.post("/judge/dashboard", url.Values{"idea_id": {idea.ID}, "score": {"eight"}})
	expectRedirect(t, r, "/judge/dashboard")
	expectBody(t, judge.get("/judge/dashboard"), "Score must be a whole number.")
	if v := e.lookup(t, `SELECT CAST(score AS TEXT) FROM scores WHERE idea_id = $1`, idea.ID); v != "11" {
		t.Errorf("invalid score changed stored value to %s", v)
	}
}

func TestDuplicateRegistrationsRejected(t *testing.T) {
	e := newEnv(t)
	college, acmeID := e.signUpCollege(t, "Acme U", "pw")

	t.Run("college name", func(t *testing.T) {
		c := e.client(t)
		r := c.post("/college/signup", url.Values{
			"name": {"Acme U"}, "email": {"other@example.edu"}, "password": {"different"},
		})
		expectRedirect(t, r, "/college/signup")
		expectBody(t, c.get("/college/signup"), "College name already exists!")
		if n := e.count(t, `SELECT COUNT(*) FROM colleges WHERE name = 'Acme U'`); n != 1 {
			t.Errorf("got %d colleges named Acme U", n)
		}
	})

	t.Run("roll number", func(t *testing.T) {
		e.signUpStudent(t, acmeID, "R-1", "pw")
		c := e.client(t)
		r := c.post("/student/signup", url.Values{
			"name": {"Imposter"}, "roll_no": {"R-1"}, "password": {"x"},
			"year": {"1"}, "branch": {"ECE"}, "college_id": {acmeID},
		})
		expectRedirect(t, r, "/student/signup")
		expectBody(t, c.get("/student/signup"), "Roll number already exists!")
		if n := e.count(t, `SELECT COUNT(*) FROM students WHERE roll_no = 'R-1'`); n != 1 {
			t.Errorf("got %d students with roll R-1", n)
		}
	})

	t.Run("judge id across colleges", func(t *testing.T) {
		expectRedirect(t, college.post("/college/judge", url.Values{
			"judge_id": {"judge-1"}, "name": {"A"}, "password": {"pw"},
		}), "/college/dashboard")

		other, _ := e.signUpCollege(t, "Other U", "pw")
		expectRedirect(t, other.post("/college/judge", url.Values{
			"judge_id": {"judge-1"}, "name": {"B"}, "password": {"pw"},
		}), "/college/dashboard")
		expectBody(t, other.get("/college/dashboard"), "Judge ID already exists!")
		if n := e.count(t, `SELECT COUNT(*) FROM judges WHERE id = 'judge-1'`); n != 1 {
			t.Errorf("got %d judges with id judge-1", n)
		}
	})
}

func TestLoginRequiresExactMatch(t *testing.T) {
	e := newEnv(t)
	college, acmeID := e.signUpCollege(t, "Acme U", "Secret1")
	e.signUpStudent(t, acmeID, "R-9", "Secret2")
	expectRedirect(t, college.post("/college/judge", url.Values{
		"judge_id": {"jj"}, "name": {"J"}, "password": {"Secret3"},
	}), "/college/dashboard")

	if n := e.count(t, `SELECT COUNT(*) FROM colleges WHERE password_hash = 'Secret1'`); n != 0 {
		t.Fatal("college password stored in plaintext")
	}

	tests := []struct {
		name string
		path string
		form url.Values
		ok   string
	}{
		{"college ok", "/college/login", url.Values{"name": {"Acme U"}, "password": {"Secret1"}}, "/college/dashboard"},
		{"college wrong password", "/college/login", url.Values{"name": {"Acme U"}, "password": {"secret1"}}, ""},
		{"college wrong name", "/college/login", url.Values{"name": {"Acme"}, "password": {"Secret1"}}, ""},
		{"college padded name", "/college/login", url.Values{"name": {"Acme U "}, "password": {"Secret1"}}, ""},
		{"student ok", "/student/login", url.Values{"roll_no": {"R-9"}, "password": {"Secret2"}}, "/student/dashboard"},
		{"student wrong password", "/student/login", url.Values{"roll_no": {"R-9"}, "password": {"Secret1"}}, ""},
		{"student unknown", "/student/login", url.Values{"roll_no": {"R-10"}, "password": {"Secret2"}}, ""},
		{"judge ok", "/judge/login", url.Values{"judge_id": {"jj"}, "password": {"Secret3"}}, "/judge/dashboard"},
		{"judge wrong password", "/judge/login", url.Values{"judge_id": {"jj"}, "password": {""}}, ""},
		{"judge unknown", "/judge/login", url.Values{"judge_id": {"JJ"}, "password": {"Secret3"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.client(t).post(tt.path, tt.form)
			if tt.ok != "" {
				expectRedirect(t, r, tt.ok)
				return
			}
			if r.status != fiber.StatusUnauthorized {
				t.Errorf("status = %d, want 401", r.status)
			}
			expectBody(t, r, "Invalid credentials!")
		})
	}
}

func TestDashboardScoping(t *testing.T) {
	e := newEnv(t)

	acme, acmeID := e.signUpCollege(t, "Acme U", "pw")
	zeta, zetaID := e.signUpCollege(t, "Zeta Tech", "pw")

	hackA := testutil.CreateTestHackathon(t, e.db, acmeID, "Acme Hack")
	hackZ := testutil.CreateTestHackathon(t, e.db, zetaID, "Zeta Hack")
	alice := testutil.CreateTestStudent(t, e.db, acmeID, "A-1", "unused")
	zed := testutil.CreateTestStudent(t, e.db, zetaID, "Z-1", "unused")
	ideaA := testutil.CreateTestIdea(t, e.db, alice.ID, hackA.ID, "Acme Secret Idea")
	testutil.CreateTestIdea(t, e.db, zed.ID, hackZ.ID, "Zeta Secret Idea")

	expectRedirect(t, acme.post("/college/judge", url.Values{"judge_id": {"acme-judge"}, "name": {"AJ"}, "password": {"pw"}}), "/college/dashboard")
	expectRedirect(t, zeta.post("/college/judge", url.Values{"judge_id": {"zeta-judge"}, "name": {"ZJ"}, "password": {"pw"}}), "/college/dashboard")

	zetaDash := zeta.get("/college/dashboard")
	expectBody(t, zetaDash, "Zeta Hack", "zeta-judge", "Zeta Secret Idea")
	expectNotInBody(t, zetaDash, "Acme Hack", "acme-judge", "Acme Secret Idea")

	zetaJudge := e.loginJudge(t, "zeta-judge", "pw")
	judgeDash := zetaJudge.get("/judge/dashboard")
	expectBody(t, judgeDash, "Zeta Secret Idea")
	expectNotInBody(t, judgeDash, "Acme Secret Idea")

	r := zetaJudge.post("/judge/dashboard", url.Values{"idea_id": {ideaA.ID}, "score": {"10"}})
	if r.status != fiber.StatusForbidden {
		t.Errorf("scoring another college's idea: status %d, want 403", r.status)
	}
	if n := e.count(t, `SELECT COUNT(*) FROM scores`); n != 0 {
		t.Errorf("got %d scores after forbidden submission", n)
	}
}

func TestStudentScoping(t *testing.T) {
	e := newEnv(t)
	_, acmeID := e.signUpCollege(t, "Acme U", "pw")
	_, zetaID := e.signUpCollege(t, "Zeta Tech", "pw")
	testutil.CreateTestHackathon(t, e.db, acmeID, "Acme Hack")
	hackZ := testutil.CreateTestHackathon(t, e.db, zetaID, "Zeta Hack")

	student := e.signUpStudent(t, acmeID, "A-1", "pw")
	dash := student.get("/student/dashboard")
	expectBody(t, dash, "Acme Hack")
	expectNotInBody(t, dash, "Zeta Hack")

	r := student.post("/student/dashboard", url.Values{
		"hackathon_id": {hackZ.ID}, "title": {"Sneaky"}, "description": {"d"},
	})
	if r.status != fiber.StatusForbidden {
		t.Errorf("submitting to another college's hackathon: status %d, want 403", r.status)
	}

	r = student.post("/student/dashboard", url.Values{
		"hackathon_id": {"missing"}, "title": {"Lost"}, "description": {"d"},
	})
	expectRedirect(t, r, "/student/dashboard")
	expectBody(t, student.get("/student/dashboard"), "Please choose a hackathon.")

	if n := e.count(t, `SELECT COUNT(*) FROM ideas`); n != 0 {
		t.Errorf("got %d ideas, want none", n)
	}
}

func TestStudentMaySubmitRepeatedly(t *testing.T) {
	e := newEnv(t)
	_, acmeID := e.signUpCollege(t, "Acme U", "pw")
	hack := testutil.CreateTestHackathon(t, e.db, acmeID, "HackX")
	student := e.signUpStudent(t, acmeID, "A-1", "pw")

	for i := 0; i < 3; i++ {
		expectRedirect(t, student.post("/student/dashboard", url.Values{
			"hackathon_id": {hack.ID}, "title": {"Same Idea"}, "description": {"again"},
		}), "/student/dashboard")
	}
	if n := e.count(t, `SELECT COUNT(*) FROM ideas WHERE hackathon_id = $1`, hack.ID); n != 3 {
		t.Errorf("got %d ideas, want 3", n)
	}
}

func TestPosterUpload(t *testing.T) {
	form := func(title string) url.Values {
		return url.Values{"title": {title}, "description": {"d"}, "deadline": {"2025-01-01"}}
	}

	t.Run("disallowed extension", func(t *testing.T) {
		e := newEnv(t)
		college, _ := e.signUpCollege(t, "Acme U", "pw")

		r := college.postMultipart("/college/dashboard", form("Exe Hack"), &poster{"x.exe", "application/octet-stream", []byte("MZ")})
		expectRedirect(t, r, "/college/dashboard")
		if e.posters.count() != 0 {
			t.Error("upload attempted for x.exe")
		}
		if n := e.count(t, `SELECT COUNT(*) FROM hackathons WHERE title = 'Exe Hack' AND poster_url IS NULL`); n != 1 {
			t.Errorf("hackathon without poster not created (count %d)", n)
		}
		expectBody(t, college.get("/college/dashboard"), "Hackathon posted!", "Poster upload failed")
	})

	t.Run("png under the cap", func(t *testing.T) {
		e := newEnv(t)
		college, acmeID := e.signUpCollege(t, "Acme U", "pw")

		r := college.postMultipart("/college/dashboard", form("Png Hack"), &poster{"poster.png", "image/png", []byte("PNGDATA")})
		expectRedirect(t, r, "/college/dashboard")

		if e.posters.count() != 1 {
			t.Fatalf("got %d uploads, want 1", e.posters.count())
		}
		got := e.posters.uploads[0]
		if got.path != acmeID+"/poster.png" || got.contentType != "image/png" || got.body != "PNGDATA" {
			t.Errorf("upload = %+v", got)
		}
		wantURL := "https://cdn.example/hackathon-posters/" + acmeID + "/poster.png"
		if got := e.lookup(t, `SELECT poster_url FROM hackathons WHERE title = 'Png Hack'`); got != wantURL {
			t.Errorf("poster_url = %q, want %q", got, wantURL)
		}
		expectBody(t, college.get("/college/dashboard"), wantURL)
	})

	t.Run("filename sanitized", func(t *testing.T) {
		e := newEnv(t)
		college, acmeID := e.signUpCollege(t, "Acme U", "pw")

		college.postMultipart("/college/dashboard", form("Path Hack"), &poster{"../../My Poster.JPG", "image/jpeg", []byte("JPG")})
		if e.posters.count() != 1 || e.posters.uploads[0].path != acmeID+"/My_Poster.JPG" {
			t.Errorf("uploads = %+v", e.posters.uploads)
		}
	})

	t.Run("oversized", func(t *testing.T) {
		e := newEnv(t)
		college, _ := e.signUpCollege(t, "Acme U", "pw")

		big := bytes.Repeat([]byte("x"), 5<<20+1)
		r := college.postMultipart("/college/dashboard", form("Big Hack"), &poster{"big.png", "image/png", big})
		expectRedirect(t, r, "/college/dashboard")
		if e.posters.count() != 0 {
			t.Error("oversized poster uploaded")
		}
		if n := e.count(t, `SELECT COUNT(*) FROM hackathons WHERE title = 'Big Hack' AND poster_url IS NULL`); n != 1 {
			t.Errorf("hackathon without poster not created (count %d)", n)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		e := newEnv(t)
		e.posters.err = errors.New("bucket unavailable")
		college, _ := e.signUpCollege(t, "Acme U", "pw")

		r := college.postMultipart("/college/dashboard", form("Down Hack"), &poster{"poster.gif", "image/gif", []byte("GIF")})
		expectRedirect(t, r, "/college/dashboard")
		if n := e.count(t, `SELECT COUNT(*) FROM hackathons WHERE title = 'Down Hack' AND poster_url IS NULL`); n != 1 {
			t.Errorf("hackathon without poster not created (count %d)", n)
		}
		expectBody(t, college.get("/college/dashboard"), "Poster upload failed: bucket unavailable", "Hackathon posted!")
	})
}

func TestPostHackathonValidation(t *testing.T) {
	e := newEnv(t)
	college, _ := e.signUpCollege(t, "Acme U", "pw")

	tests := []struct {
		name  string
		form  url.Values
		flash string
	}{
		{"missing deadline", url.Values{"title": {"T"}, "description": {"D"}}, "Title, description and deadline are required."},
		{"blank title", url.Values{"title": {"  "}, "description": {"D"}, "deadline": {"2025-01-01"}}, "Title, description and deadline are required."},
		{"bad deadline", url.Values{"title": {"T"}, "description": {"D"}, "deadline": {"next friday"}}, "Deadline must be a date (YYYY-MM-DD)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectRedirect(t, college.post("/college/dashboard", tt.form), "/college/dashboard")
			expectBody(t, college.get("/college/dashboard"), tt.flash)
		})
	}
	if n := e.count(t, `SELECT COUNT(*) FROM hackathons`); n != 0 {
		t.Errorf("got %d hackathons after invalid posts", n)
	}
}

func TestStudentSignupValidation(t *testing.T) {
	e := newEnv(t)
	_, acmeID := e.signUpCollege(t, "Acme U", "pw")

	c := e.client(t)
	expectBody(t, c.get("/student/signup"), "Acme U", acmeID)

	expectRedirect(t, c.post("/student/signup", url.Values{
		"name": {"N"}, "roll_no": {"R"}, "password": {"p"}, "year": {"1"}, "branch": {"B"}, "college_id": {"nope"},
	}), "/student/signup")
	expectBody(t, c.get("/student/signup"), "Please choose a valid college.")

	expectRedirect(t, c.post("/student/signup", url.Values{"name": {"N"}, "roll_no": {"R"}}), "/student/signup")
	expectBody(t, c.get("/student/signup"), "All fields are required.")

	if n := e.count(t, `SELECT COUNT(*) FROM students`); n != 0 {
		t.Errorf("got %d students after invalid signups", n)
	}
}

func TestProtectedRoutesRequireRole(t *testing.T) {
	e := newEnv(t)
	college, acmeID := e.signUpCollege(t, "Acme U", "pw")
	student := e.signUpStudent(t, acmeID, "R-1", "pw")

	anon := e.client(t)
	expectRedirect(t, anon.get("/college/dashboard"), "/college/login")
	expectRedirect(t, anon.post("/college/judge", url.Values{"judge_id": {"x"}}), "/college/login")
	expectRedirect(t, anon.get("/student/dashboard"), "/student/login")
	expectRedirect(t, anon.get("/judge/dashboard"), "/judge/login")

	// A student session carries a college id but is not a college session.
	expectRedirect(t, student.get("/college/dashboard"), "/college/login")
	expectRedirect(t, student.get("/judge/dashboard"), "/judge/login")
	expectRedirect(t, college.get("/student/dashboard"), "/student/login")

	// Login pages send an already signed-in user to the dashboard.
	expectRedirect(t, college.get("/college/login"), "/college/dashboard")
	expectRedirect(t, student.get("/student/login"), "/student/dashboard")
}

func TestLogout(t *testing.T) {
	e := newEnv(t)
	college, _ := e.signUpCollege(t, "Acme U", "pw")

	expectRedirect(t, college.get("/college/logout"), "/")
	expectRedirect(t, college.get("/college/dashboard"), "/college/login")
}

func TestDeletedAccountIsSignedOut(t *testing.T) {
	e := newEnv(t)
	college, acmeID := e.signUpCollege(t, "Acme U", "pw")
	expectRedirect(t, college.post("/college/judge", url.Values{
		"judge_id": {"gone-judge"}, "name": {"G"}, "password": {"pw"},
	}), "/college/dashboard")
	judge := e.loginJudge(t, "gone-judge", "pw")
	student := e.signUpStudent(t, acmeID, "GONE-1", "pw")

	if _, err := e.db.Exec(`DELETE FROM judges WHERE id = 'gone-judge'`); err != nil {
		t.Fatalf("delete judge: %v", err)
	}
	if _, err := e.db.Exec(`DELETE FROM students WHERE roll_no = 'GONE-1'`); err != nil {
		t.Fatalf("delete student: %v", err)
	}

	tests := []struct {
		name      string
		c         *client
		dashboard string
		login     string
	}{
		{"judge", judge, "/judge/dashboard", "/judge/login"},
		{"student", student, "/student/dashboard", "/student/login"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectRedirect(t, tt.c.get(tt.dashboard), tt.login)
			if r := tt.c.get(tt.login); r.status != fiber.StatusOK {
				t.Errorf("login page after sign-out: status %d, want 200", r.status)
			}
		})
	}
}

func TestLandingAndNotFound(t *testing.T) {
	e := newEnv(t)
	c := e.client(t)

	home := c.get("/")
	if home.status != fiber.StatusOK {
		t.Fatalf("GET / status = %d", home.status)
	}
	expectBody(t, home, "Welcome to HackHub", "/college/signup", "/student/signup", "/judge/login")

	missing := c.get("/nowhere")
	if missing.status != fiber.StatusNotFound {
		t.Errorf("GET /nowhere status = %d, want 404", missing.status)
	}
	expectBody(t, missing, "Page Not Found")

	college, _ := e.signUpCollege(t, "Acme U", "pw")
	expectBody(t, college.get("/"), "You are signed in as Acme U", "/college/dashboard")
}
