package handler

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFuncs_FormatPrice(t *testing.T) {
	funcs := TemplateFuncs()
	formatPrice := funcs["formatPrice"].(func(decimal.Decimal) string)

	assert.Equal(t, "$109.95", formatPrice(decimal.RequireFromString("109.95")))
	assert.Equal(t, "$0.00", formatPrice(decimal.Zero))
	assert.Equal(t, "$22.30", formatPrice(decimal.RequireFromString("22.3")))
}

func TestNewRenderer_ParsesAllPages(t *testing.T) {
	r, err := NewRenderer("../../web/templates")
	require.NoError(t, err)

	for _, name := range []string{"home", "product", "cart", "checkout", "confirmation"} {
		_, err := r.Execute(name)
		assert.NoError(t, err, name)
	}

	_, err = r.Execute("layout")
	assert.Error(t, err, "the layout is not a page")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer("../../web/templates")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "missing", nil)
	assert.Error(t, err)
}
