package util

// Version and Commit are stamped at build time:
//
//	go build -ldflags "-X github.com/mxcd/fittracker-download/internal/util.Version=v1.0.0 \
//	  -X github.com/mxcd/fittracker-download/internal/util.Commit=abc1234" ./cmd/server
var (
	Version = "development"
	Commit  = "unknown"
)
