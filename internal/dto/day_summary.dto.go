package dto

type DaySummaryDTO struct {
	Date           string   `json:"date"`
	TotalPresent   int      `json:"total_present"`
	TotalAbsent    int      `json:"total_absent"`
	RevenuePresent float64  `json:"revenue_present"`
	NamesPresent   []string `json:"names_present"`
	NamesAbsent    []string `json:"names_absent"`
}
