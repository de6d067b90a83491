package postcommit

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"
)

const confirmationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Your reservation at {{.LocationName}} is confirmed</h2>
  <p>Hi {{.CustomerName}},</p>
  {{- if .Message}}
  <p>{{.Message}}</p>
  {{- end}}
  <table cellpadding="4">
    <tr><td><strong>Confirmation code</strong></td><td>{{.Code}}</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
    <tr><td><strong>Time</strong></td><td>{{.Time}}{{if .Timezone}} ({{.Timezone}}){{end}}</td></tr>
    <tr><td><strong>Party size</strong></td><td>{{.PartySize}}</td></tr>
    {{- if .TableLabel}}
    <tr><td><strong>Table</strong></td><td>{{.TableLabel}}</td></tr>
    {{- end}}
    {{- if .Address}}
    <tr><td><strong>Address</strong></td><td>{{.Address}}</td></tr>
    {{- end}}
  </table>
  {{- if .Requests}}
  <h3>Special requests</h3>
  <ul>
    {{- range .Requests}}
    <li>{{.}}</li>
    {{- end}}
  </ul>
  {{- end}}
  <p>Please keep your confirmation code to view or cancel this reservation.</p>
</body>
</html>
`

type RenderedEmail struct {
	Subject  string
	HTMLBody string
}

type confirmationData struct {
	LocationName string
	CustomerName string
	Message      string
	Code         string
	Date         string
	Time         string
	Timezone     string
	PartySize    int
	TableLabel   string
	Address      string
	Requests     []string
}

type Renderer struct {
	confirmation *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		confirmation: template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

func (r *Renderer) Confirmation(b shared.CommittedBooking) (RenderedEmail, error) {
	res := b.Reservation
	if res == nil {
		return RenderedEmail{}, errs.New("booking has no reservation")
	}

	data := confirmationData{
		LocationName: b.LocationName,
		CustomerName: res.Contact().Name(),
		Message:      b.ConfirmationMessage,
		Code:         res.ConfirmationCode().String(),
		Date:         res.Slot().Date().Format("Monday, January 2, 2006"),
		Time:         time.Time{}.Add(res.Slot().TimeOfDay()).Format("3:04 PM"),
		Timezone:     b.LocationTimezone,
		PartySize:    res.PartySize(),
		TableLabel:   b.TableLabel,
		Address:      b.LocationAddress,
		Requests:     describeAccommodations(res.Accommodations()),
	}

	var body bytes.Buffer
	if err := r.confirmation.Execute(&body, data); err != nil {
		return RenderedEmail{}, errs.Wrap(err, "failed to render confirmation email")
	}

	return RenderedEmail{
		Subject:  fmt.Sprintf("Reservation confirmed: %s on %s", b.LocationName, res.Slot().DateString()),
		HTMLBody: body.String(),
	}, nil
}

func describeAccommodations(a reservation.Accommodations) []string {
	var out []string
	if a.Allergies != "" {
		out = append(out, "Allergies: "+a.Allergies)
	}
	if a.Occasion != "" {
		out = append(out, "Occasion: "+a.Occasion)
	}
	if a.Wheelchair {
		out = append(out, "Wheelchair access")
	}
	if a.HighChair {
		out = append(out, "High chair")
	}
	if a.Notes != "" {
		out = append(out, "Notes: "+a.Notes)
	}
	return out
}
