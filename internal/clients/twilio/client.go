package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/utils"
)

type Client interface {
	SendWhatsApp(ctx context.Context, to string, body string) (*Message, error)
}

type Config struct {
	AccountSID   string
	AuthToken    string
	BaseURL      string
	WhatsAppFrom string
	Timeout      time.Duration
}

func ConfigFromEnv(log *logger.Logger) Config {
	timeoutSec := utils.GetEnvAsInt("TWILIO_TIMEOUT_SECONDS", 30, log)
	return Config{
		AccountSID:   strings.TrimSpace(utils.GetEnv("TWILIO_ACCOUNT_SID", "", log)),
		AuthToken:    strings.TrimSpace(utils.GetEnv("TWILIO_AUTH_TOKEN", "", log)),
		BaseURL:      strings.TrimSpace(utils.GetEnv("TWILIO_BASE_URL", "", log)),
		WhatsAppFrom: strings.TrimSpace(utils.GetEnv("TWILIO_WHATSAPP_FROM", "", log)),
		Timeout:      time.Duration(timeoutSec) * time.Second,
	}
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv(log))
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.AccountSID) == "" {
		return nil, fmt.Errorf("missing TWILIO_ACCOUNT_SID")
	}
	if strings.TrimSpace(cfg.AuthToken) == "" {
		return nil, fmt.Errorf("missing TWILIO_AUTH_TOKEN")
	}
	if strings.TrimSpace(cfg.WhatsAppFrom) == "" {
		return nil, fmt.Errorf("missing TWILIO_WHATSAPP_FROM")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.twilio.com/2010-04-01"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &client{
		log:        log.With("client", "TwilioClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

type Message struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
	From   string `json:"from"`
}

type apiError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}

type HTTPError struct {
	StatusCode int
	Body       string
	APIError   *apiError
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "twilio: <nil error>"
	}
	if e.APIError != nil && strings.TrimSpace(e.APIError.Message) != "" {
		if e.APIError.Code != 0 {
			return fmt.Sprintf("twilio http %d: %s (code=%d)", e.StatusCode, e.APIError.Message, e.APIError.Code)
		}
		return fmt.Sprintf("twilio http %d: %s", e.StatusCode, e.APIError.Message)
	}
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 4000 {
		msg = msg[:4000] + "..."
	}
	return fmt.Sprintf("twilio http %d: %s", e.StatusCode, msg)
}

// SendWhatsApp sends a WhatsApp message through the Messages API. The `to`
// number may be passed with or without the whatsapp: prefix.
func (c *client) SendWhatsApp(ctx context.Context, to string, body string) (*Message, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, fmt.Errorf("twilio: To required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("twilio: Body required")
	}
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}
	from := c.cfg.WhatsAppFrom
	if !strings.HasPrefix(from, "whatsapp:") {
		from = "whatsapp:" + from
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.cfg.BaseURL, c.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("twilio: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twilio: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("twilio: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		var ae apiError
		if json.Unmarshal(raw, &ae) == nil && ae.Message != "" {
			httpErr.APIError = &ae
		}
		return nil, httpErr
	}

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("twilio: decode response: %w", err)
	}

	c.log.Debug("WhatsApp message accepted", "sid", msg.SID, "status", msg.Status)
	return &msg, nil
}
