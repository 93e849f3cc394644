package nhl

import "errors"

// ErrUnavailable marks readiness-probe failures against the upstream API.
// Regular fetches never return it; they degrade to error-marker payloads so
// the aggregation pipeline always has something to chew on.
var ErrUnavailable = errors.New("nhl api unavailable")
