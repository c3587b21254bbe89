package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"servicehub/config"
	"servicehub/models"
)

// CaptureResult is the outcome of a processor capture call.
type CaptureResult struct {
	ID     string
	Status string
}

// Processor abstracts the external payment gateway. The production
// implementation talks to the PayPal checkout REST API; tests substitute a
// stub.
type Processor interface {
	// CreateOrder registers a checkout order with the processor and returns
	// the URL the customer must be redirected to for approval.
	CreateOrder(p *models.Payment) (string, error)
	// CaptureOrder captures an approved checkout order by the processor's
	// own order id.
	CaptureOrder(processorOrderID string) (*CaptureResult, error)
}

// PayPalClient implements Processor against the PayPal v2 checkout API.
type PayPalClient struct {
	BaseURL    string
	ClientID   string
	Secret     string
	ReturnBase string
	HTTPClient *http.Client
}

// NewPayPalClient builds a client from the loaded application config.
func NewPayPalClient() *PayPalClient {
	return &PayPalClient{
		BaseURL:    config.AppConfig.PayPalBaseURL,
		ClientID:   config.AppConfig.PayPalClientID,
		Secret:     config.AppConfig.PayPalSecret,
		ReturnBase: config.AppConfig.AppBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// generateAccessToken exchanges the client credentials for a bearer token.
// A fresh token is fetched per call; the sandbox tolerates this and it keeps
// the client stateless.
func (c *PayPalClient) generateAccessToken() (string, error) {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(c.ClientID, c.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}
	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decoding token response failed: %w", err)
	}
	return tok.AccessToken, nil
}

type checkoutLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type checkoutOrderResponse struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Links  []checkoutLink `json:"links"`
}

func (c *PayPalClient) CreateOrder(p *models.Payment) (string, error) {
	token, err := c.generateAccessToken()
	if err != nil {
		return "", err
	}

	returnURL := fmt.Sprintf("%s/order/completeOrder?orderId=%s&userId=%s&providerEmail=%s&scheduleTime=%s",
		c.ReturnBase,
		url.QueryEscape(p.OrderID),
		url.QueryEscape(p.UserID),
		url.QueryEscape(p.ProviderEmail),
		url.QueryEscape(p.ScheduleTime.Format(time.RFC3339)),
	)
	cancelURL := fmt.Sprintf("%s/order/cancelOrder?orderId=%s", c.ReturnBase, url.QueryEscape(p.OrderID))

	body := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"reference_id": p.OrderID,
				"description":  p.ProviderName,
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         fmt.Sprintf("%.2f", p.Price),
				},
			},
		},
		"application_context": map[string]string{
			"return_url":  returnURL,
			"cancel_url":  cancelURL,
			"user_action": "PAY_NOW",
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode checkout order: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/v2/checkout/orders", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("checkout request returned status %d", resp.StatusCode)
	}
	var created checkoutOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decoding checkout response failed: %w", err)
	}
	for _, link := range created.Links {
		if link.Rel == "approve" {
			return link.Href, nil
		}
	}
	return "", fmt.Errorf("checkout response carried no approval link")
}

func (c *PayPalClient) CaptureOrder(processorOrderID string) (*CaptureResult, error) {
	token, err := c.generateAccessToken()
	if err != nil {
		return nil, err
	}

	captureURL := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.BaseURL, url.PathEscape(processorOrderID))
	req, err := http.NewRequest(http.MethodPost, captureURL, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("failed to build capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("capture request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("capture request returned status %d", resp.StatusCode)
	}
	var captured checkoutOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&captured); err != nil {
		return nil, fmt.Errorf("decoding capture response failed: %w", err)
	}
	return &CaptureResult{ID: captured.ID, Status: captured.Status}, nil
}
