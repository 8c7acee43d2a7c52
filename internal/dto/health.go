package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/pkg/database"
)

type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Uptime    float64         `json:"uptime"` // seconds
	Database  database.Health `json:"database"`
}
