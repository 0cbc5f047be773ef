package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessageHeaders(t *testing.T) {
	msg := Message{
		From:    "ops@example.com",
		To:      "ops@example.com",
		Subject: "New Application",
		HTML:    "<p>hello</p>",
		Text:    "hello",
	}

	raw := string(buildMessage(msg))

	assert.Contains(t, raw, "From: ops@example.com\r\n")
	assert.Contains(t, raw, "To: ops@example.com\r\n")
	assert.Contains(t, raw, "Subject: New Application\r\n")
	assert.Contains(t, raw, "MIME-Version: 1.0\r\n")
	assert.Contains(t, raw, "Content-Type: multipart/alternative")
}

func TestBuildMessageParts(t *testing.T) {
	msg := Message{
		From:    "ops@example.com",
		To:      "ops@example.com",
		Subject: "New Application",
		HTML:    "<p>hello</p>",
		Text:    "hello",
	}

	raw := string(buildMessage(msg))

	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, raw, "<p>hello</p>")

	// Text part comes before the HTML alternative
	assert.Less(t, strings.Index(raw, "text/plain"), strings.Index(raw, "text/html"))
}

func TestBuildMessageWithoutHTML(t *testing.T) {
	msg := Message{
		From:    "ops@example.com",
		To:      "ops@example.com",
		Subject: "New Application",
		Text:    "hello",
	}

	raw := string(buildMessage(msg))

	assert.NotContains(t, raw, "text/html")
	assert.Contains(t, raw, "hello")
}

func TestSendRequiresCredentials(t *testing.T) {
	client := NewClient("smtp.example.com", 587, "", "")

	err := client.Send(Message{From: "a@b.co", To: "a@b.co", Subject: "x", Text: "x"})

	assert.Error(t, err)
}
