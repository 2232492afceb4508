package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func TestBuildCheckoutMessage(t *testing.T) {
	req := models.CheckoutRequest{
		Module:       models.ModuleSports,
		CustomerName: "João",
		Items: []models.CheckoutItem{
			{ProductID: uuid.Must(uuid.NewV7()), Name: "Camisa Flamengo", Size: "M", Quantity: 2, Price: 199.90},
			{ProductID: uuid.Must(uuid.NewV7()), Name: "Meião", Quantity: 1, Price: 29.90},
		},
	}

	msg, total := BuildCheckoutMessage("Petrocino Sports", req)

	if want := 2*199.90 + 29.90; total != want {
		t.Fatalf("total = %.2f, want %.2f", total, want)
	}
	for _, fragment := range []string{"Petrocino Sports", "2x Camisa Flamengo", "(tam. M)", "1x Meião", "João"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("message missing %q:\n%s", fragment, msg)
		}
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link, err := BuildWhatsAppLink("+55 (11) 91234-5678", "Olá, tudo bem?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/5511912345678?text=") {
		t.Fatalf("unexpected link: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "Olá, tudo bem?" {
		t.Fatalf("text round-trip failed: %q", got)
	}
}

func TestBuildWhatsAppLink_RejectsShortNumber(t *testing.T) {
	if _, err := BuildWhatsAppLink("123", "msg"); err == nil {
		t.Fatal("expected error for non-dialable number")
	}
}
