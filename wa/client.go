package wa

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/dilshat/campaign-sender/log"
)

//GatewayError carries the upstream status and message of a failed provider call
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return e.Message
}

func NewGatewayError(statusCode int, message string) *GatewayError {
	return &GatewayError{StatusCode: statusCode, Message: message}
}

type Client interface {
	//SendTemplate sends the stored template with the given components to the recipient
	SendTemplate(to, templateName string, components []Component) error
	//SendText sends a free-text message to the recipient
	SendText(to, text string) error
}

type client struct {
	apiUrl        string
	accessToken   string
	phoneNumberId string
	languageCode  string
	httpClient    *http.Client
}

func NewClient(apiUrl, accessToken, phoneNumberId, languageCode string, timeoutSec int) Client {
	return &client{
		apiUrl:        apiUrl,
		accessToken:   accessToken,
		phoneNumberId: phoneNumberId,
		languageCode:  languageCode,
		httpClient:    &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type templateMessage struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []Component `json:"components,omitempty"`
}

type language struct {
	Code string `json:"code"`
}

type textMessage struct {
	Body string `json:"body"`
}

type outboundPayload struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Template         *templateMessage `json:"template,omitempty"`
	Text             *textMessage     `json:"text,omitempty"`
}

type errorPayload struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) SendTemplate(to, templateName string, components []Component) error {
	//drop empty entries, the provider rejects components without parameters
	filtered := make([]Component, 0, len(components))
	for _, comp := range components {
		if len(comp.Parameters) > 0 {
			filtered = append(filtered, comp)
		}
	}

	payload := outboundPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: &templateMessage{
			Name:       templateName,
			Language:   language{Code: c.languageCode},
			Components: filtered,
		},
	}

	return c.post(payload)
}

func (c *client) SendText(to, text string) error {
	payload := outboundPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             &textMessage{Body: text},
	}

	return c.post(payload)
}

func (c *client) post(payload outboundPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", c.apiUrl+"/"+c.phoneNumberId+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewGatewayError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, err := ioutil.ReadAll(resp.Body)
		log.WarnIfErr("Error reading provider response", err)

		message := resp.Status
		var errResp errorPayload
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}

		return NewGatewayError(resp.StatusCode, message)
	}

	return nil
}
