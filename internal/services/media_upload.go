package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

// mediaHostResponse is the upload host's response (Cloudinary-style API).
type mediaHostResponse struct {
	PublicID     string `json:"public_id"`
	SecureURL    string `json:"secure_url"`
	ResourceType string `json:"resource_type"` // image, video or raw
}

// MediaUploadResult is what the handler persists on a PostMedia row.
type MediaUploadResult struct {
	URL          string `json:"url"`
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
}

// UploadMedia forwards an uploaded file to the external media host and returns
// the hosted URL. The host stores the bytes; we keep no copy.
func UploadMedia(file multipart.File, header *multipart.FileHeader) (*MediaUploadResult, error) {
	uploadURL := os.Getenv("MEDIA_UPLOAD_URL")
	if uploadURL == "" {
		return nil, fmt.Errorf("MEDIA_UPLOAD_URL not configured")
	}
	preset := os.Getenv("MEDIA_UPLOAD_PRESET")

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	part, err := writer.CreateFormFile("file", header.Filename)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if preset != "" {
		if err := writer.WriteField("upload_preset", preset); err != nil {
			return nil, fmt.Errorf("build upload request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}

	req, err := http.NewRequest("POST", uploadURL, &requestBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media host request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("media host returned %d: %s", resp.StatusCode, string(body))
	}

	var hostResp mediaHostResponse
	if err := json.NewDecoder(resp.Body).Decode(&hostResp); err != nil {
		return nil, fmt.Errorf("decode media host response: %w", err)
	}

	resourceType := hostResp.ResourceType
	if resourceType == "" {
		resourceType = classifyResourceType(header.Header.Get("Content-Type"))
	}

	return &MediaUploadResult{
		URL:          hostResp.SecureURL,
		PublicID:     hostResp.PublicID,
		ResourceType: resourceType,
	}, nil
}

// classifyResourceType falls back to the file's content type when the host
// does not report one.
func classifyResourceType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "raw"
	}
}
