package dto

type EmailReportRequest struct {
	To    string `json:"to" validate:"required,email"`
	Table string `json:"table" validate:"required"`
}

type EmailReportResponse struct {
	To       string `json:"to"`
	Table    string `json:"table"`
	Filename string `json:"filename"`
}
