package wa

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	API_URL         = "https://graph.test"
	ACCESS_TOKEN    = "secret-token"
	PHONE_NUMBER_ID = "709687138895035"
	LANGUAGE_CODE   = "en_US"
	RECIPIENT       = "996555112233"
)

// RoundTripFunc .
type RoundTripFunc func(req *http.Request) *http.Response

// RoundTrip .
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

//NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: RoundTripFunc(fn),
	}
}

func newClientWithTransport(fn RoundTripFunc) *client {
	return &client{
		apiUrl:        API_URL,
		accessToken:   ACCESS_TOKEN,
		phoneNumberId: PHONE_NUMBER_ID,
		languageCode:  LANGUAGE_CODE,
		httpClient:    NewTestClient(fn),
	}
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: 200,
		Body:       ioutil.NopCloser(bytes.NewBufferString(`{"messages":[{"id":"wamid.1"}]}`)),
		Header:     make(http.Header),
	}
}

func TestClient_SendTemplate(t *testing.T) {
	var captured map[string]interface{}
	var capturedReq *http.Request

	c := newClientWithTransport(func(req *http.Request) *http.Response {
		capturedReq = req
		body, _ := ioutil.ReadAll(req.Body)
		_ = json.Unmarshal(body, &captured)
		return okResponse()
	})

	components := []Component{
		NewImageHeader("https://cdn.example.com/promo.png"),
		NewTextBody([]Parameter{{Type: "text", Text: "Ann"}}),
		{Type: "body"}, //empty entry must be filtered out
	}

	err := c.SendTemplate(RECIPIENT, "order_update", components)

	require.NoError(t, err)
	require.Equal(t, API_URL+"/"+PHONE_NUMBER_ID+"/messages", capturedReq.URL.String())
	require.Equal(t, "Bearer "+ACCESS_TOKEN, capturedReq.Header.Get("Authorization"))
	require.Equal(t, "application/json", capturedReq.Header.Get("Content-Type"))

	require.Equal(t, "whatsapp", captured["messaging_product"])
	require.Equal(t, RECIPIENT, captured["to"])
	require.Equal(t, "template", captured["type"])

	tmpl := captured["template"].(map[string]interface{})
	require.Equal(t, "order_update", tmpl["name"])
	require.Equal(t, LANGUAGE_CODE, tmpl["language"].(map[string]interface{})["code"])
	require.Len(t, tmpl["components"].([]interface{}), 2)
}

func TestClient_SendText(t *testing.T) {
	var captured map[string]interface{}

	c := newClientWithTransport(func(req *http.Request) *http.Response {
		body, _ := ioutil.ReadAll(req.Body)
		_ = json.Unmarshal(body, &captured)
		return okResponse()
	})

	err := c.SendText(RECIPIENT, "Hello there")

	require.NoError(t, err)
	require.Equal(t, "text", captured["type"])
	require.Equal(t, "Hello there", captured["text"].(map[string]interface{})["body"])
	require.Nil(t, captured["template"])
}

func TestClient_SendTemplateApiError(t *testing.T) {
	c := newClientWithTransport(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: 400,
			Status:     "400 Bad Request",
			Body:       ioutil.NopCloser(bytes.NewBufferString(`{"error":{"message":"(#132001) Template name does not exist"}}`)),
			Header:     make(http.Header),
		}
	})

	err := c.SendTemplate(RECIPIENT, "missing", nil)

	require.Error(t, err)
	gwErr, ok := err.(*GatewayError)
	require.True(t, ok)
	require.Equal(t, 400, gwErr.StatusCode)
	require.Contains(t, gwErr.Message, "Template name does not exist")
}

func TestClient_SendTextUnparseableError(t *testing.T) {
	c := newClientWithTransport(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: 500,
			Status:     "500 Internal Server Error",
			Body:       ioutil.NopCloser(bytes.NewBufferString("oops")),
			Header:     make(http.Header),
		}
	})

	err := c.SendText(RECIPIENT, "Hello")

	require.Error(t, err)
	gwErr, ok := err.(*GatewayError)
	require.True(t, ok)
	require.Equal(t, 500, gwErr.StatusCode)
	require.Equal(t, "500 Internal Server Error", gwErr.Message)
}

func TestClient_NetworkError(t *testing.T) {
	c := &client{
		apiUrl:        "http://127.0.0.1:1",
		accessToken:   ACCESS_TOKEN,
		phoneNumberId: PHONE_NUMBER_ID,
		languageCode:  LANGUAGE_CODE,
		httpClient:    &http.Client{Timeout: time.Second},
	}

	err := c.SendText(RECIPIENT, "Hello")

	require.Error(t, err)
	gwErr, ok := err.(*GatewayError)
	require.True(t, ok)
	require.Equal(t, 0, gwErr.StatusCode)
}
