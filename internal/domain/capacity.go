package domain

import "fmt"

// CapacityDelta is the change in occupancy requested from EnforceCapacity.
type CapacityDelta int

const (
	DeltaRelease CapacityDelta = -1
	DeltaRecheck CapacityDelta = 0
	DeltaReserve CapacityDelta = 1
)

// CapacityDecision is the outcome of EnforceCapacity: either accepted with the
// new places-left value, or rejected with a reason.
type CapacityDecision struct {
	Accepted   bool
	PlacesLeft int
	Reason     error
}

// Err returns nil for an accepted decision and the rejection reason otherwise.
func (d CapacityDecision) Err() error {
	if d.Accepted {
		return nil
	}
	return d.Reason
}

// EnforceCapacity decides whether applying delta to the current occupancy keeps
// 0 <= placesLeft <= maxParticipants. occupancy must be the authoritative
// registration count, read under the same lock as the write that follows.
func EnforceCapacity(maxParticipants, occupancy int, delta CapacityDelta) CapacityDecision {
	switch delta {
	case DeltaRelease, DeltaRecheck, DeltaReserve:
	default:
		return CapacityDecision{Reason: fmt.Errorf("invalid capacity delta %d", delta)}
	}

	newOccupancy := occupancy + int(delta)
	if newOccupancy < 0 {
		return CapacityDecision{Reason: ErrOccupancyCorrupted}
	}
	placesLeft := maxParticipants - newOccupancy
	if placesLeft < 0 {
		return CapacityDecision{Reason: ErrCapacityExceeded}
	}
	return CapacityDecision{Accepted: true, PlacesLeft: placesLeft}
}
