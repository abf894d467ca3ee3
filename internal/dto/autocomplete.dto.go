package dto

type AutocompleteDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Phone string `json:"phone"`
	Area  string `json:"area"`
}
