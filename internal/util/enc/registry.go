package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// DefaultEncoder is the name of the encoder used when none is given
const DefaultEncoder = "base64"

var encoders = []Encoder{
	&Base64Encoder{},
}

// Encoders returns all known encoders
func Encoders() []Encoder {
	res := make([]Encoder, len(encoders))
	copy(res, encoders)
	return res
}

// ByName finds the encoder either by its name (case-insensitive) or by its one-letter code.
func ByName(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	for _, e := range encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
		if len(name) == 1 && name[0] == e.Code() {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown encoder: %q", name)
}
