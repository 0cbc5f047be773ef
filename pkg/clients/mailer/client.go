package mailer

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
)

// Message is one outbound notification email
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Client defines the interface for the outbound mail transport
type Client interface {
	// Verify performs a startup self-check against the SMTP server,
	// including authentication. It reports readiness only; callers decide
	// whether a failure is fatal.
	Verify() error
	// Send delivers one message. The returned error is the terminal
	// delivery result for that message; there is no retry.
	Send(msg Message) error
}

type clientImpl struct {
	host     string
	port     int
	username string
	password string
}

// NewClient creates a new SMTP mail client
func NewClient(host string, port int, username, password string) Client {
	return &clientImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

func (c *clientImpl) addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

func (c *clientImpl) auth() smtp.Auth {
	return smtp.PlainAuth("", c.username, c.password, c.host)
}

func (c *clientImpl) Verify() error {
	conn, err := smtp.Dial(c.addr())
	if err != nil {
		return fmt.Errorf("error connecting to mail server: %w", err)
	}
	defer conn.Close()

	if ok, _ := conn.Extension("STARTTLS"); ok {
		if err := conn.StartTLS(&tls.Config{ServerName: c.host}); err != nil {
			return fmt.Errorf("error negotiating TLS: %w", err)
		}
	}

	if ok, _ := conn.Extension("AUTH"); ok {
		if err := conn.Auth(c.auth()); err != nil {
			return fmt.Errorf("error authenticating with mail server: %w", err)
		}
	}

	return conn.Quit()
}

func (c *clientImpl) Send(msg Message) error {
	if c.username == "" || c.password == "" {
		return fmt.Errorf("mail client not properly configured")
	}

	body := buildMessage(msg)

	if err := smtp.SendMail(c.addr(), c.auth(), msg.From, []string{msg.To}, body); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	log.Printf("Sent email to %s: %s", msg.To, msg.Subject)
	return nil
}

// buildMessage assembles a multipart/alternative MIME message with a plain
// text part and an optional HTML part.
func buildMessage(msg Message) []byte {
	boundary := "----=_NextPart_1234567890"

	message := fmt.Sprintf("From: %s\r\n", msg.From) +
		fmt.Sprintf("To: %s\r\n", msg.To) +
		fmt.Sprintf("Subject: %s\r\n", msg.Subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	message += fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		msg.Text + "\r\n"

	if msg.HTML != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			msg.HTML + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	return []byte(message)
}
