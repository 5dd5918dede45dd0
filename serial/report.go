package serial

import "github.com/bmeg/serial/manifest"

type State int

const (
	Pending State = iota
	Renamed
	Aborted
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Renamed:
		return "renamed"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Step tracks one record through a run. For Encode, From is the name on
// disk and Record.OriginalName is the underscored form.
type Step struct {
	Record manifest.Record
	From   string
	To     string
	State  State
}

// Report is the ordered outcome of one Encode or Decode run.
type Report struct {
	Steps []*Step
}

func (r *Report) add(rec manifest.Record, from, to string) *Step {
	s := &Step{Record: rec, From: from, To: to, State: Pending}
	r.Steps = append(r.Steps, s)
	return s
}

// Count returns the number of steps in state s.
func (r *Report) Count(s State) int {
	n := 0
	for _, st := range r.Steps {
		if st.State == s {
			n++
		}
	}
	return n
}

// Records returns the manifest records of every step, in order.
func (r *Report) Records() []manifest.Record {
	out := make([]manifest.Record, 0, len(r.Steps))
	for _, st := range r.Steps {
		out = append(out, st.Record)
	}
	return out
}
