// Package stores holds the client-side cached mirrors of the remote
// collections. Each store tracks every operation with its own status and
// last-error slot, so a failed delete never blanks out a loaded list. Data
// is only refreshed by an explicit re-fetch; there is no cache expiry.
package stores

type OpStatus string

const (
	StatusIdle      OpStatus = "idle"
	StatusLoading   OpStatus = "loading"
	StatusSucceeded OpStatus = "succeeded"
	StatusFailed    OpStatus = "failed"
)

// OpState is the per-operation status slot.
type OpState struct {
	Status OpStatus `json:"status"`
	Error  string   `json:"error,omitempty"`
}

func (s *OpState) start() {
	s.Status = StatusLoading
	s.Error = ""
}

func (s *OpState) succeed() {
	s.Status = StatusSucceeded
	s.Error = ""
}

func (s *OpState) fail(err error) {
	s.Status = StatusFailed
	s.Error = err.Error()
}

// normalized maps the zero value to an explicit idle status.
func (s OpState) normalized() OpState {
	if s.Status == "" {
		s.Status = StatusIdle
	}
	return s
}
