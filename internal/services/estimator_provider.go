package services

import (
	"time"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/roster"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

// NewEstimatorProvider builds the mock-data estimator from config. A fixed
// seed makes fills reproducible; zero falls back to the clock.
func NewEstimatorProvider(conf *structures.Config) *roster.Estimator {
	seed := conf.Estimator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return roster.NewEstimator(seed)
}
