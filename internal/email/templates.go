package email

import (
	"bytes"
	"html/template"
)

var hotLeadTemplate = template.Must(template.New("hot_lead").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
  <h2>Hot lead ready for follow-up</h2>
  <table cellpadding="4">
    <tr><td><strong>Name</strong></td><td>{{.LeadName}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.LeadEmail}}</td></tr>
    {{if .Company}}<tr><td><strong>Company</strong></td><td>{{.Company}}</td></tr>{{end}}
    <tr><td><strong>Score</strong></td><td>{{.Score}} ({{.Category}})</td></tr>
  </table>
  {{if .Reasoning}}<p>{{.Reasoning}}</p>{{end}}
  {{if .NextActions}}
  <p><strong>Suggested next actions</strong></p>
  <ul>
    {{range .NextActions}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}
</body>
</html>`))

func renderHotLeadAlert(alert HotLeadAlert) (string, error) {
	var buf bytes.Buffer
	if err := hotLeadTemplate.Execute(&buf, alert); err != nil {
		return "", err
	}
	return buf.String(), nil
}
