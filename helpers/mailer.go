package helpers

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

// ReceiptItem is one line of the checkout receipt.
type ReceiptItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// MailPayload is a rendered message ready for delivery.
type MailPayload struct {
	Recipient string
	Subject   string
	HTML      string
}

// BuildReceipt renders the SHOPI receipt email for a completed checkout.
func BuildReceipt(recipient, reference string, items []ReceiptItem, total int) MailPayload {
	var itemList strings.Builder
	for _, item := range items {
		itemList.WriteString(fmt.Sprintf("<li> %s X %d </li>", item.Name, item.Quantity))
	}

	html := fmt.Sprintf(`
	<header>SHOPI</header>
	<h1>Here are the list of item that you recently bought</h1>
	<p>Order reference: %s</p>
	<ul>
		%s
	</ul>
	<h4>Total: <strong>%d</strong></h4>
	<footer>
		<p>We look forward to your next purchase!</p>
		<i>Warm Regards, SHOPI</i>
	</footer>`, reference, itemList.String(), total)

	return MailPayload{
		Recipient: recipient,
		Subject:   "Thank You For Shopping At SHOPI",
		HTML:      html,
	}
}

// SendMail delivers a payload over SMTP. Config comes from SMTP_HOST, SMTP_PORT,
// SMTP_USER, SMTP_PASSWORD and MAIL_FROM.
func SendMail(payload MailPayload) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return errors.New("SMTP_HOST is not configured")
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", payload.Recipient)
	m.SetHeader("Subject", payload.Subject)
	m.SetBody("text/html", payload.HTML)

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
