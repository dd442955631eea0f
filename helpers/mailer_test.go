package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceipt(t *testing.T) {
	items := []ReceiptItem{
		{Name: "ProductA", Quantity: 2},
		{Name: "ProductB", Quantity: 1},
	}
	payload := BuildReceipt("shopper@example.com", "20250101120000-ref", items, 240)

	assert.Equal(t, "shopper@example.com", payload.Recipient)
	assert.Equal(t, "Thank You For Shopping At SHOPI", payload.Subject)
	assert.Contains(t, payload.HTML, "<li> ProductA X 2 </li>")
	assert.Contains(t, payload.HTML, "<li> ProductB X 1 </li>")
	assert.Contains(t, payload.HTML, "<strong>240</strong>")
	assert.Contains(t, payload.HTML, "20250101120000-ref")
}

func TestSendMailWithoutConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "")

	err := SendMail(MailPayload{Recipient: "shopper@example.com", Subject: "x", HTML: "y"})
	require.Error(t, err)
}
