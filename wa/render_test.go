package wa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	TEMPLATE  = "Hi {name}, your order {order_status} shipped"
	IMAGE_URL = "https://cdn.example.com/promo.png"
)

func TestRender(t *testing.T) {
	components, text, err := Render(TEMPLATE, map[string]string{"name": "Ann", "order_status": "shipped"}, "")

	require.NoError(t, err)
	require.Equal(t, "Hi Ann, your order shipped shipped", text)
	require.Len(t, components, 1)
	require.Equal(t, "body", components[0].Type)
	require.Equal(t, []Parameter{
		{Type: "text", Text: "Ann"},
		{Type: "text", Text: "shipped"},
	}, components[0].Parameters)
}

func TestRenderWithImageHeader(t *testing.T) {
	components, text, err := Render(TEMPLATE, map[string]string{"name": "Ann", "order_status": "shipped"}, IMAGE_URL)

	require.NoError(t, err)
	require.Equal(t, "Hi Ann, your order shipped shipped", text)
	require.Len(t, components, 2)
	require.Equal(t, "header", components[0].Type)
	require.Equal(t, IMAGE_URL, components[0].Parameters[0].Image.Link)
	require.Equal(t, "body", components[1].Type)
}

func TestRenderNoPlaceholders(t *testing.T) {
	components, text, err := Render("Plain announcement", map[string]string{"name": "Ann"}, IMAGE_URL)

	require.NoError(t, err)
	require.Equal(t, "Plain announcement", text)
	//header only, no body component without resolved placeholders
	require.Len(t, components, 1)
	require.Equal(t, "header", components[0].Type)
}

func TestRenderEmptyBodyNoImage(t *testing.T) {
	components, text, err := Render("", map[string]string{}, "")

	require.NoError(t, err)
	require.Empty(t, text)
	require.Empty(t, components)
}

func TestRenderMissingAttribute(t *testing.T) {
	components, text, err := Render(TEMPLATE, map[string]string{"name": "Ann"}, "")

	require.Error(t, err)
	require.Contains(t, err.Error(), "order_status")
	require.Empty(t, text)
	//resolved attributes still make it into the body component
	require.Len(t, components, 1)
	require.Equal(t, []Parameter{{Type: "text", Text: "Ann"}}, components[0].Parameters)
}

func TestRenderEmptyAttrs(t *testing.T) {
	_, text, err := Render(TEMPLATE, map[string]string{}, "")

	require.Error(t, err)
	require.Empty(t, text)
}

func TestRenderDuplicatePlaceholders(t *testing.T) {
	components, text, err := Render("{name} and {name} again, code {code}", map[string]string{"name": "Ann", "code": "X1"}, "")

	require.NoError(t, err)
	require.Equal(t, "Ann and Ann again, code X1", text)
	//every occurrence substituted, attribute listed once at its first occurrence
	require.Equal(t, []Parameter{
		{Type: "text", Text: "Ann"},
		{Type: "text", Text: "X1"},
	}, components[0].Parameters)
}

func TestRenderDeterministic(t *testing.T) {
	attrs := map[string]string{"name": "Ann", "order_status": "shipped"}

	_, text1, err1 := Render(TEMPLATE, attrs, IMAGE_URL)
	_, text2, err2 := Render(TEMPLATE, attrs, IMAGE_URL)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, text1, text2)
}

func TestNewURLButton(t *testing.T) {
	button := NewURLButton(0, "promo-42")

	require.Equal(t, "button", button.Type)
	require.Equal(t, "url", button.SubType)
	require.Equal(t, "0", button.Index)
	require.Equal(t, []Parameter{{Type: "text", Text: "promo-42"}}, button.Parameters)
}
