package projects

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// MaxImageSize caps uploaded project images at 10 MB.
	MaxImageSize = 10 << 20

	maxFormMemory = 32 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ParseForm reads and validates a multipart add-project submission. Every
// endpoint-level check lives here so handlers stay uniform: the result is
// either a fully validated Input or a *ValidationError.
func ParseForm(r *http.Request) (*Input, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, invalid("invalid multipart form")
	}

	in := &Input{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		LiveLink:    strings.TrimSpace(r.FormValue("live_link")),
		SourceLink:  strings.TrimSpace(r.FormValue("source_link")),
		Category:    strings.TrimSpace(r.FormValue("category")),
	}

	if in.Title == "" || in.Description == "" || in.SourceLink == "" || in.Category == "" {
		return nil, invalid("missing required fields")
	}
	if !validURL(in.SourceLink) {
		return nil, invalid("source_link is not a valid URL")
	}
	if in.LiveLink != "" && !validURL(in.LiveLink) {
		return nil, invalid("live_link is not a valid URL")
	}
	if !validCategory(in.Category) {
		return nil, invalid("unknown category %q", in.Category)
	}

	if raw := strings.TrimSpace(r.FormValue("github_repo_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, invalid("github_repo_id must be an integer")
		}
		in.GitHubRepoID = &id
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return in, nil
	}
	if err != nil {
		return nil, invalid("invalid image upload")
	}
	defer file.Close()

	if header.Size > MaxImageSize {
		return nil, invalid("image size must be less than 10MB")
	}
	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, invalid("could not read image upload")
	}
	if len(data) > MaxImageSize {
		return nil, invalid("image size must be less than 10MB")
	}
	if len(data) == 0 {
		return in, nil
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !allowedImageTypes[contentType] {
		return nil, invalid("invalid image type, only JPG, PNG and WebP are allowed")
	}

	in.Image = &ImageUpload{
		Data:        data,
		ContentType: contentType,
		Filename:    header.Filename,
	}
	return in, nil
}

// validURL mirrors the browser's URL constructor: absolute, with scheme and
// host.
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
