package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Paystack - client for the Paystack payment gateway
type Paystack struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewPaystack creates a new Paystack client from the environment
func NewPaystack() *Paystack {
	return &Paystack{
		baseURL:   getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		secretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// request performs an authenticated call against the Paystack API
func (p *Paystack) request(method, endpoint string, body interface{}) (*http.Response, error) {
	url := fmt.Sprintf("%s%s", p.baseURL, endpoint)
	var reqBody io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.secretKey)

	return p.client.Do(req)
}

// InitializeTransaction starts a checkout session and returns the
// authorization URL the customer is redirected to.
func (p *Paystack) InitializeTransaction(email string, amountKobo int64, reference, callbackURL string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"email":     email,
		"amount":    amountKobo,
		"reference": reference,
		"currency":  "NGN",
	}
	if callbackURL != "" {
		data["callback_url"] = callbackURL
	}

	resp, err := p.request("POST", "/transaction/initialize", data)
	if err != nil {
		return nil, fmt.Errorf("initialize request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("initialize failed: %s", string(respBody))
	}

	var result struct {
		Status  bool                   `json:"status"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if !result.Status {
		return nil, fmt.Errorf("initialize failed: %s", result.Message)
	}
	return result.Data, nil
}

// VerifyTransaction fetches the settled state of a transaction by reference.
func (p *Paystack) VerifyTransaction(reference string) (map[string]interface{}, error) {
	resp, err := p.request("GET", "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("verify failed: %s", string(respBody))
	}

	var result struct {
		Status  bool                   `json:"status"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if !result.Status {
		return nil, fmt.Errorf("verify failed: %s", result.Message)
	}
	return result.Data, nil
}
