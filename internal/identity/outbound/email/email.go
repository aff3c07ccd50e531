package email

import (
	"context"
	"embed"

	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Mail struct {
	client    mail.Mail
	templates *mail.Templates
	ins       instrument.Instrumentation
}

// New builds the adapter with the embedded activation templates.
func New(client mail.Mail, ins instrument.Instrumentation) (*Mail, error) {
	tpls, err := mail.NewTemplates(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Mail{client: client, templates: tpls, ins: ins}, nil
}

// SendTemplate renders templateID with data and sends it as an HTML email to a single recipient.
func (m *Mail) SendTemplate(ctx context.Context, to, subject, templateID string, data map[string]any) error {
	ctx, span := m.ins.Tracer("identity.outbound.email").Start(ctx, "SendTemplate")
	defer span.End()

	span.SetAttributes(attribute.String("mail.template", templateID))

	body, err := m.templates.Render(templateID, data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: body,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
