package runner

import (
	"time"

	"github.com/mgutz/logxi/v1"
)

var logger = log.New("tabula:runner")

// LogQueriesThreshold is the threshold for logging "slow" queries at Warn.
// Zero disables it.
var LogQueriesThreshold time.Duration
