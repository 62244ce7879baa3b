package dto

// HealthResponse reports the state of the service dependencies
type HealthResponse struct {
	Success bool              `json:"success"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}
