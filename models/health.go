package models

// HealthStatus is the payload of the liveness endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}
