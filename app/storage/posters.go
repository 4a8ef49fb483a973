package storage

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"unicode"

	storage_go "github.com/supabase-community/storage-go"
	"golang.org/x/text/unicode/norm"
)

// MaxPosterSize caps a poster upload at 5 MiB.
const MaxPosterSize = 5 << 20

var (
	ErrPosterType     = errors.New("poster must be a png, jpg, jpeg or gif image")
	ErrPosterTooLarge = errors.New("poster exceeds 5 MB")
	ErrPosterName     = errors.New("poster filename has no usable characters")
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// PosterStore uploads poster images and returns their public URL.
type PosterStore interface {
	Upload(objectPath, contentType string, body io.Reader) (string, error)
}

// Supabase stores posters in a bucket of the managed object storage.
type Supabase struct {
	baseURL string
	key     string
	bucket  string
}

// NewSupabase targets the storage API of the project at baseURL.
func NewSupabase(baseURL, key, bucket string) *Supabase {
	return &Supabase{baseURL: baseURL, key: key, bucket: bucket}
}

// defaultContentType is sent for parts that arrive without a type.
const defaultContentType = "application/octet-stream"

// Upload writes the object, overwriting an existing one at the same path.
// storage_go.Client keeps request headers in client-wide state, so every
// upload gets its own client.
func (s *Supabase) Upload(objectPath, contentType string, body io.Reader) (string, error) {
	client := storage_go.NewClient(s.baseURL+"/storage/v1", s.key, map[string]string{"apikey": s.key})

	if contentType == "" {
		contentType = defaultContentType
	}
	upsert := true
	opts := storage_go.FileOptions{Upsert: &upsert, ContentType: &contentType}

	if _, err := client.UploadFile(s.bucket, objectPath, body, opts); err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", s.bucket, objectPath, err)
	}
	return client.GetPublicUrl(s.bucket, objectPath).SignedURL, nil
}

// CheckPoster validates a poster before anything is uploaded.
func CheckPoster(filename string, size int64) error {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || !allowedExtensions[strings.ToLower(filename[dot+1:])] {
		return ErrPosterType
	}
	if size > MaxPosterSize {
		return ErrPosterTooLarge
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a client-supplied filename to a safe, flat ASCII name.
// It returns "" when nothing usable is left.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// PosterPath is where a college's poster lives inside the bucket.
func PosterPath(collegeID, filename string) (string, error) {
	clean := SanitizeFilename(filename)
	if clean == "" {
		return "", ErrPosterName
	}
	return path.Join(collegeID, clean), nil
}
