package domain

// TimestampKind names a scheduling marker recognised in payload text.
type TimestampKind string

const (
	// TimestampScheduled is the SCHEDULED: marker.
	TimestampScheduled TimestampKind = "scheduled"

	// TimestampDeadline is the DEADLINE: marker.
	TimestampDeadline TimestampKind = "deadline"
)

// TimestampKinds lists every recognised kind in scan order.
var TimestampKinds = []TimestampKind{TimestampScheduled, TimestampDeadline}

// TimestampRecord maps each detected kind to the date text it carried.
// A kind is present iff it has an entry. The record is not parsed into
// calendar values.
type TimestampRecord map[TimestampKind]string

// Has reports whether the kind was detected.
func (r TimestampRecord) Has(kind TimestampKind) bool {
	_, ok := r[kind]
	return ok
}

// Flag returns 1 when the kind was detected and 0 otherwise.
func (r TimestampRecord) Flag(kind TimestampKind) int {
	if r.Has(kind) {
		return 1
	}
	return 0
}
