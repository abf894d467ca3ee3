package dto

// Linha do painel de presença: agenda + cliente + flag, já formatada
// como as telas esperam (data dd/mm/aaaa, horário HH:MM).
type DayEntryDTO struct {
	ID            uint     `json:"id"`
	ClientName    string   `json:"client_name"`
	ClientPhone   string   `json:"client_phone"`
	ClientArea    string   `json:"client_area"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	PackageType   string   `json:"package_type"`
	PackageQty    string   `json:"package_qty"`
	PaymentMethod string   `json:"payment_method"`
	Amount        *float64 `json:"amount"`
	Present       bool     `json:"present"`
	Status        string   `json:"status"`
}
