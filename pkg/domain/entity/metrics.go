package entity

import "time"

// FileResult is the outcome of processing one list file
type FileResult struct {
	InputPath   string
	OutputPath  string
	UniqueCount int
	Err         error
}

// Metrics represents extraction metrics
type Metrics struct {
	TotalFiles      int
	DoneFiles       int
	FailedFiles     int
	LinesRead       int64
	LinesSkipped    int64
	DomainsResolved int64
	UniqueWritten   int64
	ApproxDistinct  uint32
	CurrentFile     string
	StartTime       time.Time
	LastUpdateTime  time.Time
}
