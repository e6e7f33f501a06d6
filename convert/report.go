package convert

import (
	"errors"
	"sort"
	"sync"
)

// Failure records why one test case could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a batch. Converted and Failed are sorted by path.
type Report struct {
	mu        sync.Mutex
	Converted []string
	Failed    []Failure
}

func (r *Report) ok(path string) {
	r.mu.Lock()
	r.Converted = append(r.Converted, path)
	r.mu.Unlock()
}

func (r *Report) fail(path string, err error) {
	r.mu.Lock()
	r.Failed = append(r.Failed, Failure{Path: path, Err: err})
	r.mu.Unlock()
}

func (r *Report) sort() {
	sort.Strings(r.Converted)
	sort.Slice(r.Failed, func(i, j int) bool { return r.Failed[i].Path < r.Failed[j].Path })
}

// Merge appends other into r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Converted = append(r.Converted, other.Converted...)
	r.Failed = append(r.Failed, other.Failed...)
	r.sort()
}

// Err joins every failure, or returns nil when the batch was clean.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}
