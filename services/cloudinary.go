package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// Cloudinary - upload proxy for car photos. The backend signs nothing here;
// uploads go through an unsigned preset configured on the Cloudinary side.
type Cloudinary struct {
	cloudName    string
	uploadPreset string
	client       *http.Client
}

func NewCloudinary() *Cloudinary {
	return &Cloudinary{
		cloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		uploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "driveport_cars"),
		client:       &http.Client{Timeout: 60 * time.Second},
	}
}

// UploadImage streams a file to Cloudinary and returns the hosted URL.
func (cl *Cloudinary) UploadImage(file io.Reader, filename string) (string, error) {
	if cl.cloudName == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.WriteField("upload_preset", cl.uploadPreset); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cl.cloudName)
	req, err := http.NewRequest("POST", url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := cl.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed: %s", string(respBody))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}
	return result.SecureURL, nil
}
