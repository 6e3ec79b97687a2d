package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	logpkg "github.com/SamWeichangyue/page-spy/pkg/log"
)

const uploadPath = "/api/v1/log/upload"

// Meta identifies an uploaded snapshot to the remote collector.
type Meta struct {
	Project   string
	Title     string
	DeviceID  string
	UserAgent string
}

// NewDeviceID returns a random device identifier for the collector run.
func NewDeviceID() string { return uuid.NewString() }

// Uploader posts snapshot payloads to a remote collector.
type Uploader struct {
	apiBase string
	client  *http.Client
	logger  logpkg.Logger
}

// NewUploader builds an uploader for the given collector base URL. A nil
// client gets a 30s-timeout default.
func NewUploader(apiBase string, client *http.Client, logger logpkg.Logger) *Uploader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = logpkg.NewNop()
	}
	return &Uploader{
		apiBase: strings.TrimRight(apiBase, "/"),
		client:  client,
		logger:  logger.With(logpkg.Component("upload")),
	}
}

// Upload wraps payload in a multipart body (file field "log") and posts it
// to <apiBase>/api/v1/log/upload with project/title/deviceId/userAgent query
// parameters.
func (u *Uploader) Upload(ctx context.Context, payload []byte, meta Meta) error {
	if u.apiBase == "" {
		return errors.New("export: upload requires an api base")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("log", "harbor.json")
	if err != nil {
		return err
	}
	if _, err := part.Write(payload); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("project", meta.Project)
	q.Set("title", meta.Title)
	q.Set("deviceId", meta.DeviceID)
	q.Set("userAgent", meta.UserAgent)
	endpoint := u.apiBase + uploadPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("export: upload failed: %s", resp.Status)
	}
	u.logger.Info("snapshot uploaded",
		logpkg.Str("project", meta.Project),
		logpkg.Str("title", meta.Title),
		logpkg.Int("bytes", len(payload)))
	return nil
}
