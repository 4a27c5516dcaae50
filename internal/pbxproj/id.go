package pbxproj

import (
	"strings"

	"github.com/google/uuid"
)

// IDLength is the width of object identifiers Xcode writes.
const IDLength = 24

// NewID returns a random 24-character upper-case hexadecimal identifier.
// It is not checked against identifiers already in the manifest.
func NewID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:IDLength]
}
