package booking

// Mesmas opções dos selects do formulário; vazio é permitido porque os
// campos de pacote e pagamento são opcionais.

var PackageTypes = map[string]string{
	"avulso":   "Avulso",
	"pacote":   "Pacote",
	"parceria": "Parceria",
}

var PaymentMethods = map[string]string{
	"pix":      "Pix",
	"dinheiro": "Dinheiro",
	"cartao":   "Cartão",
}

func IsPackageTypeValid(v string) bool {
	if v == "" {
		return true
	}
	_, ok := PackageTypes[v]
	return ok
}

func IsPaymentMethodValid(v string) bool {
	if v == "" {
		return true
	}
	_, ok := PaymentMethods[v]
	return ok
}
