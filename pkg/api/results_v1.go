// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON schema for one query's alignment outcome.
// Field names and types are frozen; additive changes only. Breaking changes
// get a ResultV2.
type ResultV1 struct {
	QueryID        string `json:"query_id"`
	Found          bool   `json:"found"`
	Score          int    `json:"score"`
	EndLocations   []int  `json:"end_locations,omitempty"`
	StartLocations []int  `json:"start_locations,omitempty"`
	Cigar          string `json:"cigar,omitempty"`
}
