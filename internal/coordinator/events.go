package coordinator

import (
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
)

// Event is a state transition request handled by Coordinator.Dispatch.
type Event interface {
	event()
}

// SearchStarted opens search Seq. Older sequence numbers are refused.
type SearchStarted struct {
	Seq   uint64
	Query models.Query
}

type SearchSucceeded struct {
	Seq  uint64
	Days []models.PriceDay
}

type SearchFailed struct {
	Seq uint64
	Err error
}

// PageRequested moves the calendar to Page. Out of range pages are ignored.
type PageRequested struct {
	Page int
}

func (SearchStarted) event()   {}
func (SearchSucceeded) event() {}
func (SearchFailed) event()    {}
func (PageRequested) event()   {}
