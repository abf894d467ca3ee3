package schedule

import "github.com/essencia-estetica/agenda-api/internal/models"

// BookingTemplate é o rascunho "copiar para novo agendamento" guardado
// na sessão. Não carrega a data de propósito: a cópia nunca pode
// duplicar um dia sem o operador escolher outro.
type BookingTemplate struct {
	ClientName    string   `json:"client_name"`
	ClientPhone   string   `json:"client_phone"`
	ClientArea    string   `json:"client_area"`
	Time          string   `json:"time"`
	PackageType   string   `json:"package_type"`
	PackageQty    string   `json:"package_qty"`
	PaymentMethod string   `json:"payment_method"`
	Amount        *float64 `json:"amount"`
}

func TemplateFromAppointment(ap *models.Appointment) BookingTemplate {
	return BookingTemplate{
		ClientName:    ap.Client.Name,
		ClientPhone:   ap.Client.Phone,
		ClientArea:    ap.Client.Area,
		Time:          ap.Time,
		PackageType:   ap.PackageType,
		PackageQty:    ap.PackageQty,
		PaymentMethod: ap.PaymentMethod,
		Amount:        ap.Amount,
	}
}
