package email

import (
	"bytes"
	"html/template"
)

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Password Reset</h2>
  <p>You requested a password reset for your TaskFlow account.</p>
  <p><a href="{{.ResetURL}}">Reset your password</a></p>
  <p>The link is valid for one hour. If you didn't request a reset, you can ignore this email.</p>
</body>
</html>
`))

func renderPasswordReset(resetURL string) (string, error) {
	var buf bytes.Buffer
	err := passwordResetTmpl.Execute(&buf, map[string]string{"ResetURL": resetURL})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
