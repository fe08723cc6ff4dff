// Package export renders a session ledger as CSV, LiveTagPRO XML or a ZIP
// bundle of both.
package export

import (
	"path"
	"strings"
	"time"
)

const (
	maxChannel = 65535

	// Default download names.
	DefaultCSVName = "events.csv"
	DefaultXMLName = "events_LiveTagProFormat.xml"
	DefaultZIPBase = "events"

	xmlSuffix = "_LiveTagProFormat.xml"
)

// Exporter renders ledgers. The zero value is not usable; use New.
type Exporter struct {
	color ColorSource
	now   func() time.Time
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{color: randomChannel, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CleanName reduces a client supplied file name to a bare name safe for a
// Content-Disposition header. Empty results fall back to def.
func CleanName(name, def string) string {
	name = strings.NewReplacer(`"`, "", "\\", "/", "\r", "", "\n", "").Replace(strings.TrimSpace(name))
	name = path.Base(name)
	if name == "." || name == "/" || name == "" {
		return def
	}
	return name
}
