package entity

// Value Object: opção exibida nos selects do formulário
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catálogos fixos do formulário. Fazem parte da configuração do componente,
// não são editáveis em runtime.
var TemplateOptions = []Option{
	{Value: "hello_world", Label: "hello_world (padrão Meta)"},
	{Value: "boas_vindas", Label: "Boas-vindas"},
	{Value: "confirmacao_pedido", Label: "Confirmação de pedido"},
}

var PhoneNumberIDOptions = []Option{
	{Value: "785310631336841", Label: "785310631336841 (principal)"},
	{Value: "702730136242853", Label: "702730136242853 (backup)"},
}

func IsValidTemplate(value string) bool {
	return containsOption(TemplateOptions, value)
}

func IsValidPhoneNumberID(value string) bool {
	return containsOption(PhoneNumberIDOptions, value)
}

func containsOption(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
