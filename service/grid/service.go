// Package grid owns the current result set. Exactly one scan may be in
// flight at a time; a cancelled or failed scan leaves the previous result set
// untouched. Sort and filter return copies and never mutate the stored set.
package grid

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/elC0mpa/az-prune/model"
)

// ErrScanInProgress is returned when a scan is requested while another is
// still running. Two scans must never interleave their results.
var ErrScanInProgress = errors.New("a scan is already in progress")

func NewService() *service {
	return &service{}
}

// BeginScan marks a scan as in flight and returns a context that CancelScan
// aborts. It fails when a scan is already running.
func (s *service) BeginScan(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return nil, ErrScanInProgress
	}
	scanCtx, cancel := context.WithCancel(ctx)
	s.scanning = true
	s.cancel = cancel
	return scanCtx, nil
}

// Complete replaces the result set with a finished scan.
func (s *service) Complete(result model.ScanResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.hasResult = true
	s.finish()
}

// Abort ends the in-flight scan without touching the prior result set. Used
// on cancellation and on query failure alike.
func (s *service) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finish()
}

// CancelScan cancels the in-flight scan, if any.
func (s *service) CancelScan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *service) finish() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.scanning = false
}

// Scanning reports whether a scan is in flight.
func (s *service) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Result returns the current result set, false when no scan has completed.
func (s *service) Result() (model.ScanResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.hasResult
}

// SortByCost returns the current rows ordered by estimated monthly cost.
// Ties keep their scan order.
func (s *service) SortByCost(descending bool) []model.OrphanedResource {
	return SortRowsByCost(s.snapshot(), descending)
}

// Filter returns the rows whose name or resource group contains the search
// text, case-insensitive. Empty search text returns everything.
func (s *service) Filter(search string) []model.OrphanedResource {
	return FilterRows(s.snapshot(), search)
}

// SortRowsByCost orders rows by estimated monthly cost, in place.
func SortRowsByCost(rows []model.OrphanedResource, descending bool) []model.OrphanedResource {
	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return rows[i].Cost.Monthly > rows[j].Cost.Monthly
		}
		return rows[i].Cost.Monthly < rows[j].Cost.Monthly
	})
	return rows
}

// FilterRows keeps the rows whose name or resource group contains the search
// text, case-insensitive.
func FilterRows(rows []model.OrphanedResource, search string) []model.OrphanedResource {
	if search == "" {
		return rows
	}
	needle := strings.ToLower(search)
	var filtered []model.OrphanedResource
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), needle) ||
			strings.Contains(strings.ToLower(row.ResourceGroup), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func (s *service) snapshot() []model.OrphanedResource {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]model.OrphanedResource, len(s.result.Resources))
	copy(rows, s.result.Resources)
	return rows
}
