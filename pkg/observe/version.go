package observe

import "github.com/google/uuid"

// Version is an opaque, uniquely minted token compared only for equality.
// Two versions are never equal unless one was copied from the other. The
// zero Version means "no invalidation has ever been recorded".
type Version struct {
	id uuid.UUID
}

// NewVersion mints a fresh token, distinct from every other token ever
// minted.
func NewVersion() Version {
	return Version{id: uuid.New()}
}

// IsZero reports whether v is the zero token.
func (v Version) IsZero() bool {
	return v.id == uuid.UUID{}
}

// String returns a short diagnostic form of the token.
func (v Version) String() string {
	if v.IsZero() {
		return "v0"
	}
	return "v-" + v.id.String()[:8]
}
