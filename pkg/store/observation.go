// Package store retains the most recent reported rates so they can be
// inspected or served after the fact.
package store

import "code.cloudfoundry.org/throughput/pkg/rate"

// Observation stores a single reported rate and when it was reported.
type Observation struct {
	Timestamp   int64         `json:"timestamp"`
	BytesPerSec rate.ByteRate `json:"bytes_per_sec"`
}

// Observations is a collection of Observation for sorting on timestamp and
// presentation purposes.
type Observations []Observation

func (o Observations) Len() int           { return len(o) }
func (o Observations) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Observations) Less(i, j int) bool { return o[i].Timestamp < o[j].Timestamp }
