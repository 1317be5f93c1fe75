package dto

import "time"

// LogQueryRequest consulta paginada del historial (query params).
type LogQueryRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	UserID    string `query:"user_id"`
	Action    string `query:"action"`
	StartDate string `query:"start_date"` // RFC 3339
	EndDate   string `query:"end_date"`
}

// LogEntryResponse una entrada de auditoría.
type LogEntryResponse struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	UserID    *string        `json:"user_id"`
	Username  string         `json:"username,omitempty"`
	Details   map[string]any `json:"details"`
	IPAddress string         `json:"ip_address,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
}

// LogPageResponse página de resultados con metadatos.
type LogPageResponse struct {
	Logs        []LogEntryResponse `json:"logs"`
	Total       int                `json:"total"`
	Pages       int                `json:"pages"`
	CurrentPage int                `json:"current_page"`
}
