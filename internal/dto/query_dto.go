package dto

type CustomQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type CustomQueryResponse struct {
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
}
