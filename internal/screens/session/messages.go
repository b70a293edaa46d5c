package session

import "time"

// tickMsg drives the countdown. The session state recomputes remaining
// time from its deadline on every tick, so tick jitter never skews the
// clock.
type tickMsg time.Time
