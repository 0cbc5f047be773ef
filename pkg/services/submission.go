package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"wrapapply/pkg/clients/mailer"
	"wrapapply/pkg/config"
	"wrapapply/pkg/metrics"
	"wrapapply/pkg/models"
)

const notificationSubject = "New Dr Pepper Vehicle Wrap Application"

const (
	successMessage = "Thank you! Your application has been submitted successfully. We will contact you soon."
	failureMessage = "Unable to submit your application. Please try again later."
)

// ApplicationService defines the interface for handling wrap applications
type ApplicationService interface {
	Submit(app models.Application) models.SubmissionResponse
}

type applicationServiceImpl struct {
	mailClient mailer.Client
	config     *config.Config
	template   *template.Template
}

// NewApplicationService creates a new application service
func NewApplicationService(mailClient mailer.Client, cfg *config.Config) ApplicationService {
	return &applicationServiceImpl{
		mailClient: mailClient,
		config:     cfg,
		template:   template.Must(template.New("notification").Parse(notificationTemplate)),
	}
}

// Submit renders one validated application into the operator notification
// email and dispatches it. The returned response is the terminal result:
// a failed delivery is reported, never retried.
func (s *applicationServiceImpl) Submit(app models.Application) models.SubmissionResponse {
	metrics.RecordApplicationReceived()

	log.Printf("Processing application from %s %s (%s)", app.FirstName, app.LastName, app.Email)

	html, err := s.renderNotification(app)
	if err != nil {
		log.Printf("Error rendering notification email: %v", err)
		metrics.RecordNotificationEmail("failure")
		return models.SubmissionResponse{
			Success: false,
			Message: failureMessage,
			Error:   err.Error(),
		}
	}

	msg := mailer.Message{
		From:    s.config.EmailUser,
		To:      s.config.EmailUser,
		Subject: notificationSubject,
		HTML:    html,
		Text:    plainTextNotification(app),
	}

	if err := s.mailClient.Send(msg); err != nil {
		log.Printf("Error dispatching notification email: %v", err)
		metrics.RecordNotificationEmail("failure")
		return models.SubmissionResponse{
			Success: false,
			Message: failureMessage,
			Error:   err.Error(),
		}
	}

	log.Printf("Notification email sent for %s %s", app.FirstName, app.LastName)
	metrics.RecordNotificationEmail("success")

	return models.SubmissionResponse{
		Success: true,
		Message: successMessage,
	}
}

func (s *applicationServiceImpl) renderNotification(app models.Application) (string, error) {
	var buf bytes.Buffer
	if err := s.template.Execute(&buf, app); err != nil {
		return "", fmt.Errorf("error rendering notification: %w", err)
	}
	return buf.String(), nil
}

// plainTextNotification is the fallback part for clients that do not
// render HTML.
func plainTextNotification(app models.Application) string {
	return fmt.Sprintf(`New Vehicle Wrap Application

Personal Information
Name: %s %s
Email: %s
Phone: %s

Address Information
Street Address: %s
City: %s
State: %s
ZIP Code: %s

Vehicle Information
Car Make: %s
Car Model: %s
Car Year: %s`,
		app.FirstName, app.LastName, app.Email, app.Phone,
		app.Address, app.City, app.State, app.ZipCode,
		app.CarMake, app.CarModel, app.CarYear)
}
