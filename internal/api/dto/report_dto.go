package dto

// GenerateReportRequest payload for report generation.
type GenerateReportRequest struct {
	Type string `json:"type"`
}
