// Package rollbook extracts student records from grade sheets.
package rollbook

import (
	"github.com/rs/zerolog"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Role selects how the columns after the name are read.
	Role models.Role
	// IDs generates record identifiers. If nil, a fresh counter is used per call.
	IDs parser.IDGenerator
	// Sheet names the worksheet to read. If empty, the first sheet is used.
	Sheet string
	// Logger receives debug output about absorbed failures. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Role: models.RoleSubject,
	}
}

func (o Options) role() models.Role {
	if o.Role == "" {
		return models.RoleSubject
	}
	return o.Role
}

func (o Options) ids(prefix string) parser.IDGenerator {
	if o.IDs != nil {
		return o.IDs
	}
	return parser.NewCounterIDs(prefix)
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
