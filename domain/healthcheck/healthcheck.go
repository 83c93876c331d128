package healthcheck

import (
	"github.com/x-xyz/salesbot/base/ctx"
)

// Status is what /healthz reports
type Status struct {
	DedupSize int `json:"dedupSize"`
	// LastRate is the cached USD per FLOW rate, empty once it expired
	LastRate string         `json:"lastRate,omitempty"`
	Counts   map[string]int `json:"counts"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	DedupSize(c ctx.Ctx) (int, error)
}
