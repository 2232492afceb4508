package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via the Resend REST API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@petrocino.store"
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// AdminInviteEmailData holds data for the admin invite email
type AdminInviteEmailData struct {
	AdminEmail string
	InviteLink string
}

// SendAdminInviteEmail sends an admin invite email via Resend
func (r *ResendClient) SendAdminInviteEmail(data AdminInviteEmailData) error {
	htmlBody := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
			<h2>Você foi convidado para o painel da loja</h2>
			<p>Use o link abaixo para criar sua conta de administrador.
			O convite expira em 48 horas.</p>
			<p><a href="%s" style="display:inline-block;padding:12px 24px;background:#111;color:#fff;text-decoration:none;border-radius:6px;">Aceitar convite</a></p>
			<p style="color:#666;font-size:12px;">Se você não esperava este convite, ignore este e-mail.</p>
		</div>`, data.InviteLink)

	return r.send(data.AdminEmail, "Convite para o painel administrativo", htmlBody)
}

// QuestionAnsweredEmailData holds data for the question-answered email
type QuestionAnsweredEmailData struct {
	CustomerEmail string
	CustomerName  string
	QuestionText  string
	AnswerText    string
}

// SendQuestionAnsweredEmail notifies a customer that their question was
// answered. Only sent when the contact looks like an email address.
func (r *ResendClient) SendQuestionAnsweredEmail(data QuestionAnsweredEmailData) error {
	htmlBody := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
			<h2>Olá, %s!</h2>
			<p>Sua pergunta foi respondida:</p>
			<blockquote style="color:#666;border-left:3px solid #ddd;padding-left:12px;">%s</blockquote>
			<p><strong>Resposta:</strong> %s</p>
		</div>`, data.CustomerName, data.QuestionText, data.AnswerText)

	return r.send(data.CustomerEmail, "Sua pergunta foi respondida", htmlBody)
}

// send posts one email to the Resend API.
func (r *ResendClient) send(to, subject, htmlBody string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      []string{to},
		"subject": subject,
		"html":    htmlBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return err
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			log.Printf("[resend] failed to read response: %v", readErr)
		}
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	return nil
}
