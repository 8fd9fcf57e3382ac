// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"
)

// ScanRun records the parameters and totals of one completed scan.
type ScanRun struct {
	ID              int64
	Timestamp       time.Time
	Source          string
	SkipFrom        int
	SkipTo          int
	XYRatio         float64
	ZigzagThreshold float64
	Evaluated       int
	Accepted        int
	Rejected        int
}

// WaveRecord is one persisted monowave of a pattern.
type WaveRecord struct {
	Label     string    `json:"label"`
	Direction string    `json:"direction"`
	IdxStart  int       `json:"idx_start"`
	IdxEnd    int       `json:"idx_end"`
	Low       float64   `json:"low"`
	High      float64   `json:"high"`
	DateStart time.Time `json:"date_start"`
	DateEnd   time.Time `json:"date_end"`
	SkipN     int       `json:"skip_n"`
}

// PatternRecord is one persisted candidate pattern. Violation is empty for
// accepted patterns and carries the first failed condition's message for
// rejected ones.
type PatternRecord struct {
	ID        int64
	RunID     int64
	RuleName  string
	Kind      string // "impulse" or "correction"
	Option    string
	IdxStart  int
	IdxEnd    int
	Waves     []WaveRecord
	Violation string
}

// DataStore defines the interface for scan persistence.
type DataStore interface {
	SaveRun(ctx context.Context, run *ScanRun) (int64, error)
	SavePattern(ctx context.Context, rec *PatternRecord) error
	GetRuns(ctx context.Context, limit int) ([]ScanRun, error)
	GetPatterns(ctx context.Context, runID int64, includeRejected bool) ([]PatternRecord, error)
	Close() error
}
