package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Email copy is Spanish (es-CL), matching the client app.

var spanishDays = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
}

type templateData struct {
	Barbero    string
	Barberia   string
	Cliente    string
	Servicio   string
	DiaSemana  string
	Fecha      string
	Relativo   string
	Hora       string
	CancelURL  string
	PaymentURL string
	Anio       int
}

// buildDateParts renders the reservation start in the shop's civil
// time: weekday name, date, relative day ("hoy", "mañana", ...) and
// clock time.
func buildDateParts(start time.Time, loc *time.Location) (dia, fecha, relativo, hora string) {
	local := start.In(loc)

	dia = spanishDays[local.Weekday()]
	fecha = local.Format("02-01-2006")
	hora = local.Format("15:04")

	today := time.Now().In(loc)
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	startDate := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	days := int(startDate.Sub(todayDate).Hours() / 24)

	switch {
	case days == 0:
		relativo = "hoy"
	case days == 1:
		relativo = "mañana"
	case days > 1:
		relativo = fmt.Sprintf("en %d días", days)
	default:
		relativo = fmt.Sprintf("hace %d días", -days)
	}

	return dia, fecha, relativo, hora
}

const layoutTmpl = `<!doctype html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family:Arial,Helvetica,sans-serif;color:#222">
{{template "body" .}}
<p style="color:#888;font-size:12px">TuBarbería © {{.Anio}}</p>
</body>
</html>`

var barberCreatedTmpl = template.Must(template.Must(template.New("layout").Parse(layoutTmpl)).Parse(`{{define "body"}}
<h2>Nueva reserva</h2>
<p>Hola {{.Barbero}}, tienes una nueva reserva en {{.Barberia}}.</p>
<ul>
  <li>Cliente: {{.Cliente}}</li>
  <li>Servicio: {{.Servicio}}</li>
  <li>Día: {{.DiaSemana}} {{.Fecha}} ({{.Relativo}})</li>
  <li>Hora: {{.Hora}}</li>
</ul>
<p><a href="{{.CancelURL}}">Anular esta reserva</a></p>
{{end}}`))

var clientCreatedTmpl = template.Must(template.Must(template.New("layout").Parse(layoutTmpl)).Parse(`{{define "body"}}
<h2>Reserva confirmada</h2>
<p>Hola {{.Cliente}}, tu reserva en {{.Barberia}} quedó agendada.</p>
<ul>
  <li>Barbero: {{.Barbero}}</li>
  <li>Servicio: {{.Servicio}}</li>
  <li>Día: {{.DiaSemana}} {{.Fecha}} ({{.Relativo}})</li>
  <li>Hora: {{.Hora}}</li>
</ul>
{{if .PaymentURL}}<p><a href="{{.PaymentURL}}">Pagar la seña de tu reserva</a></p>{{end}}
{{end}}`))

var barberCancelledTmpl = template.Must(template.Must(template.New("layout").Parse(layoutTmpl)).Parse(`{{define "body"}}
<h2>Reserva anulada</h2>
<p>Hola {{.Barbero}}, se anuló una reserva en {{.Barberia}}.</p>
<ul>
  <li>Cliente: {{.Cliente}}</li>
  <li>Servicio: {{.Servicio}}</li>
  <li>Día: {{.DiaSemana}} {{.Fecha}}</li>
  <li>Hora: {{.Hora}}</li>
</ul>
{{end}}`))

var clientCancelledTmpl = template.Must(template.Must(template.New("layout").Parse(layoutTmpl)).Parse(`{{define "body"}}
<h2>Tu reserva fue anulada</h2>
<p>Hola {{.Cliente}}, tu reserva en {{.Barberia}} con {{.Barbero}} fue anulada.</p>
<ul>
  <li>Servicio: {{.Servicio}}</li>
  <li>Día: {{.DiaSemana}} {{.Fecha}}</li>
  <li>Hora: {{.Hora}}</li>
</ul>
{{end}}`))

func render(t *template.Template, data templateData) (string, error) {
	data.Anio = time.Now().Year()

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
