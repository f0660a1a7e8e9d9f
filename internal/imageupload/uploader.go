// Package imageupload talks to the external image hosting service. Profile
// images are never stored locally: the raw file is streamed to the service
// with an unsigned upload preset and only the returned HTTPS URL is kept.
package imageupload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/config"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// Uploader sends an image to the external service and returns its public URL.
type Uploader interface {
	// Upload streams the file to the image service and returns the hosted
	// HTTPS URL. The filename is only a hint for the remote service.
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// HTTPUploader is the production Uploader backed by the configured upload
// endpoint (an unsigned Cloudinary-style preset upload).
type HTTPUploader struct {
	endpoint     string
	uploadPreset string
	eagerWidth   int
	client       *http.Client
}

// NewHTTPUploader creates an uploader from the application upload settings.
func NewHTTPUploader(cfg config.UploadSettings) *HTTPUploader {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPUploader{
		endpoint:     cfg.Endpoint,
		uploadPreset: cfg.UploadPreset,
		eagerWidth:   cfg.EagerWidth,
		client:       &http.Client{Timeout: timeout},
	}
}

// uploadResponse is the subset of the service response we read. The eager
// variant is the pre-cropped rendition requested at upload time.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Eager     []struct {
		SecureURL string `json:"secure_url"`
	} `json:"eager"`
}

// Upload streams the file to the image service and returns the hosted URL.
// Any failure maps to a 400 upload error so the surrounding signup or update
// aborts before touching the database.
func (u *HTTPUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", utils.NewInternalServerError(fmt.Errorf("failed to build upload form: %w", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", utils.NewInternalServerError(fmt.Errorf("failed to read upload file: %w", err))
	}

	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", utils.NewInternalServerError(fmt.Errorf("failed to build upload form: %w", err))
	}
	if u.eagerWidth > 0 {
		eager := fmt.Sprintf("c_fill,w_%d", u.eagerWidth)
		if err := writer.WriteField("eager", eager); err != nil {
			return "", utils.NewInternalServerError(fmt.Errorf("failed to build upload form: %w", err))
		}
	}

	if err := writer.Close(); err != nil {
		return "", utils.NewInternalServerError(fmt.Errorf("failed to finalize upload form: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return "", utils.NewInternalServerError(fmt.Errorf("failed to build upload request: %w", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	startTime := time.Now()
	resp, err := u.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", u.endpoint).Msg("Image upload request failed")
		return "", utils.NewBadRequestError(constants.MsgImageUploadFailed)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close upload response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().
			Int("status", resp.StatusCode).
			Str("endpoint", u.endpoint).
			Dur("duration", time.Since(startTime)).
			Msg("Image service rejected upload")
		return "", utils.NewBadRequestError(constants.MsgImageUploadFailed)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Error().Err(err).Msg("Image service returned unreadable response")
		return "", utils.NewBadRequestError(constants.MsgImageUploadFailed)
	}

	url := parsed.SecureURL
	if len(parsed.Eager) > 0 && parsed.Eager[0].SecureURL != "" {
		url = parsed.Eager[0].SecureURL
	}

	if !strings.HasPrefix(url, "https://") {
		log.Error().Str("url", url).Msg("Image service returned non-HTTPS URL")
		return "", utils.NewBadRequestError(constants.MsgImageUploadFailed)
	}

	log.Info().
		Str("filename", filename).
		Dur("duration", time.Since(startTime)).
		Msg("Image uploaded")

	return url, nil
}
