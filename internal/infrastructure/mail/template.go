// Package mail delivers verification codes through SMTP, SendGrid, or the
// application log.
package mail

import (
	"fmt"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

const appName = "DailyMate"

type message struct {
	Subject string
	Text    string
	HTML    string
}

func verificationMessage(code string, purpose domain.CodePurpose) message {
	title, intro := "Verify your email", "Use this code to verify your email address:"
	if purpose == domain.PurposeResetPassword {
		title, intro = "Reset your password", "Use this code to reset your password:"
	}
	minutes := int(domain.CodeTTL.Minutes())

	return message{
		Subject: fmt.Sprintf("[%s] %s", appName, title),
		Text:    fmt.Sprintf("%s\n\n%s\n\nThe code expires in %d minutes.", intro, code, minutes),
		HTML: fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <h2>%s %s</h2>
    <p>%s</p>
    <div style="font-size: 28px; font-weight: bold; letter-spacing: 3px;">%s</div>
    <p>The code expires in %d minutes.</p>
  </div>
</body>
</html>`, appName, title, intro, code, minutes),
	}
}
