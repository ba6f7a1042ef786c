package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cedbrasil/enrolld/config"
	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
)

// Client implements ports.PaymentProcessor against the Mercado Pago API.
// Checkouts are recurring preapprovals; the intent's correlation id travels
// as external_reference and comes back on webhook lookups.
type Client struct {
	baseURL     string
	accessToken string
	backURL     string
	httpClient  *http.Client
	log         zerolog.Logger
}

// NewClient creates the client.
func NewClient(cfg config.PaymentConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		backURL:     cfg.BackURL,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log.With().Str("component", "mercadopago_client").Logger(),
	}
}

type preapprovalRequest struct {
	Reason            string        `json:"reason"`
	AutoRecurring     autoRecurring `json:"auto_recurring"`
	PayerEmail        string        `json:"payer_email,omitempty"`
	BackURL           string        `json:"back_url"`
	ExternalReference string        `json:"external_reference"`
}

type autoRecurring struct {
	Frequency         int     `json:"frequency"`
	FrequencyType     string  `json:"frequency_type"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
}

type preapprovalResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
	PayerEmail        string `json:"payer_email"`
	InitPoint         string `json:"init_point"`
	SandboxInitPoint  string `json:"sandbox_init_point"`
}

type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	ExternalReference string      `json:"external_reference"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

// CreateCheckout creates a monthly preapproval and returns its redirect link.
func (c *Client) CreateCheckout(ctx context.Context, summary domain.CheckoutSummary) (*domain.Checkout, error) {
	payload := preapprovalRequest{
		Reason: "Assinatura CED – Cursos: " + strings.Join(summary.CourseNames, ", "),
		AutoRecurring: autoRecurring{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: float64(summary.AmountCents) / 100,
			CurrencyID:        "BRL",
		},
		PayerEmail:        summary.Email,
		BackURL:           c.backURL,
		ExternalReference: summary.CorrelationID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/preapproval", bytes.NewReader(body))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp preapprovalResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	redirect := resp.InitPoint
	if redirect == "" {
		redirect = resp.SandboxInitPoint
	}
	if resp.ID == "" || redirect == "" {
		return nil, apperror.ErrExternalUnavailable("payment processor",
			fmt.Errorf("preapproval response missing id or init_point"))
	}

	c.log.Info().
		Str("correlation_id", summary.CorrelationID).
		Str("resource_id", resp.ID).
		Msg("checkout created")
	return &domain.Checkout{ResourceID: resp.ID, RedirectURL: redirect}, nil
}

// GetResource re-fetches the authoritative state for a notified resource.
func (c *Client) GetResource(ctx context.Context, topic domain.EventTopic, resourceID string) (*domain.PaymentResource, error) {
	switch topic {
	case domain.TopicPreapproval:
		return c.getPreapproval(ctx, resourceID)
	case domain.TopicPayment:
		return c.getPayment(ctx, resourceID)
	default:
		return nil, apperror.Validation(fmt.Sprintf("unsupported notification topic %q", topic))
	}
}

func (c *Client) getPreapproval(ctx context.Context, resourceID string) (*domain.PaymentResource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/preapproval/"+url.PathEscape(resourceID), nil)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	var resp preapprovalResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &domain.PaymentResource{
		ResourceID:    resp.ID,
		Status:        domain.PaymentStatus(resp.Status),
		CorrelationID: resp.ExternalReference,
		PayerEmail:    resp.PayerEmail,
	}, nil
}

func (c *Client) getPayment(ctx context.Context, resourceID string) (*domain.PaymentResource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+url.PathEscape(resourceID), nil)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	var resp paymentResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &domain.PaymentResource{
		ResourceID:    resp.ID.String(),
		Status:        domain.PaymentStatus(resp.Status),
		CorrelationID: resp.ExternalReference,
		PayerEmail:    resp.Payer.Email,
	}, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrExternalUnavailable("payment processor", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperror.ErrExternalUnavailable("payment processor", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.ErrExternalUnavailable("payment processor",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(body), 200)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.ErrExternalUnavailable("payment processor",
			fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
