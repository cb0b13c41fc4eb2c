// Package runs persists completed QAOA solves so results can be listed and
// inspected after the fact, and prunes old records on a retention schedule.
package runs

import "time"

// Run is one persisted solve: an input summary, the headline results, and
// the full result payload as JSON.
type Run struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	NumAssets        int       `json:"num_assets"`
	Cardinality      int       `json:"cardinality"`
	Depth            int       `json:"depth"`
	Shots            int       `json:"shots"`
	Seed             int64     `json:"seed"`
	BestExpectation  float64   `json:"best_expectation"`
	Bitstring        string    `json:"bitstring"`
	Objective        float64   `json:"objective"`
	AnnualReturn     float64   `json:"annual_return"`
	AnnualVolatility float64   `json:"annual_volatility"`
	Degraded         bool      `json:"degraded"`
	ResultJSON       string    `json:"result,omitempty"`
}
