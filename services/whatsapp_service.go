package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// Checkout is stateless: the cart lives on the client, and "placing an
// order" means opening a WhatsApp conversation with the store's number and
// the cart rendered as a message. Nothing is persisted here.

// BuildCheckoutMessage renders the cart as the WhatsApp order message.
func BuildCheckoutMessage(storeName string, req models.CheckoutRequest) (message string, total float64) {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s! Gostaria de fazer um pedido:\n\n", storeName)

	for _, item := range req.Items {
		line := fmt.Sprintf("• %dx %s", item.Quantity, item.Name)
		if item.Size != "" {
			line += fmt.Sprintf(" (tam. %s)", item.Size)
		}
		line += fmt.Sprintf(" — R$ %.2f", item.Price*float64(item.Quantity))
		b.WriteString(line)
		b.WriteString("\n")
		total += item.Price * float64(item.Quantity)
	}

	fmt.Fprintf(&b, "\nTotal: R$ %.2f\n", total)
	fmt.Fprintf(&b, "Nome: %s", req.CustomerName)
	return b.String(), total
}

// BuildWhatsAppLink builds a wa.me deep link for the given phone number and
// pre-filled message. The number is reduced to digits; anything shorter
// than a dialable number is rejected.
func BuildWhatsAppLink(number, message string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) < 8 {
		return "", errors.New("whatsapp number is not dialable")
	}

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message), nil
}
