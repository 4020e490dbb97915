package employee

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Roster is the company-wide shared state: the company name and the set of
// currently live records. It is constructed once, before any record, and is
// mutated only by New, Clone and Release.
type Roster struct {
	companyName string
	out         io.Writer

	mu   sync.Mutex
	live map[uuid.UUID]struct{}
}

// NewRoster creates an empty roster that narrates lifecycle events to out.
func NewRoster(companyName string, out io.Writer) *Roster {
	return &Roster{
		companyName: companyName,
		out:         out,
		live:        make(map[uuid.UUID]struct{}),
	}
}

func (r *Roster) CompanyName() string { return r.companyName }

// TotalEmployees reports how many records are currently alive.
func (r *Roster) TotalEmployees() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// DisplayCompanyInfo prints the company summary banner.
func (r *Roster) DisplayCompanyInfo() {
	fmt.Fprintf(r.out, "\n=== Company Information ===\n")
	fmt.Fprintf(r.out, "Company: %s\n", r.companyName)
	fmt.Fprintf(r.out, "Total Employees: %d\n", r.TotalEmployees())
}

// add allocates a handle for a newly constructed or cloned record.
func (r *Roster) add() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := uuid.New()
	r.live[h] = struct{}{}
	return h
}

// remove reports whether the handle was still live. Each handle is removed
// at most once.
func (r *Roster) remove(h uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[h]; !ok {
		return false
	}
	delete(r.live, h)
	return true
}
