package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridMailer sends mail through the SendGrid v3 API.
type SendgridMailer struct {
	key    string
	host   string
	from   *sgmail.Email
	client *rest.Client
	log    zerolog.Logger
}

func NewSendgridMailer(key, fromEmail string, log zerolog.Logger) *SendgridMailer {
	return &SendgridMailer{
		key:    key,
		host:   sendgridHost,
		from:   sgmail.NewEmail(appName, fromEmail),
		client: rest.DefaultClient,
		log:    log,
	}
}

func (m *SendgridMailer) SendVerificationCode(ctx context.Context, to, code string, purpose domain.CodePurpose) error {
	req := sendgrid.GetRequest(m.key, sendgridEndpoint, m.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(to, verificationMessage(code, purpose)))

	httpReq, err := rest.BuildRequestObject(req)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	httpRes, err := m.client.MakeRequest(httpReq.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	res, err := rest.BuildResponse(httpRes)
	if err != nil {
		return fmt.Errorf("sendgrid response: %w", err)
	}
	if !accepted(res.StatusCode) {
		return fmt.Errorf("sendgrid send: status %d", res.StatusCode)
	}

	m.log.Info().Str("to", to).Str("purpose", string(purpose)).Msg("verification email sent")
	return nil
}

// accepted reports a 2xx reply; SendGrid answers 202 when mail is queued.
func accepted(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func (m *SendgridMailer) prepare(to string, msg message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", to))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(
		sgmail.NewContent("text/plain", msg.Text),
		sgmail.NewContent("text/html", msg.HTML),
	)
	return v3
}
