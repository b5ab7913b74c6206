package domain

import "github.com/google/uuid"

// ID identifies an entity (user, content, tag, follow edge). It is a value
// type so two references to the same logical entity compare equal regardless
// of the string form they were parsed from; membership and duplicate checks
// rely on this.
type ID uuid.UUID

// NewID returns a fresh random ID. Only the document store assigns identity
// to documents; everything else receives IDs from the outside.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses any accepted UUID string form into a canonical ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID(u), nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is the zero ID, which never names an entity.
func (id ID) IsZero() bool {
	return id == ID{}
}

// MarshalText encodes the ID in the canonical lowercase hex-and-dashes form.
func (id ID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText accepts the same forms as ParseID.
func (id *ID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
