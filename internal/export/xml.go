package export

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/okian/matchtag/internal/domain/model"
)

const (
	xmlComment = "Generated with LiveTagPRO format (https://livetag.pro)"
	sortType   = "sort order"

	// windowSeconds pads each instance on both sides of the tagged moment.
	windowSeconds = 20

	groupEvent = "Event"
	groupCross = "CrossOutcome"
	groupShot  = "ShotOutcome"
)

type xmlFile struct {
	XMLName   xml.Name      `xml:"file"`
	Comment   xml.Comment   `xml:",comment"`
	SortInfo  xmlSortInfo   `xml:"SORT_INFO"`
	Instances []xmlInstance `xml:"ALL_INSTANCES>instance"`
	Rows      []xmlRow      `xml:"ROWS>row"`
}

type xmlSortInfo struct {
	SortType string `xml:"sort_type"`
}

type xmlInstance struct {
	ID     int        `xml:"ID"`
	Code   string     `xml:"code"`
	Start  string     `xml:"start"`
	End    string     `xml:"end"`
	Labels []xmlLabel `xml:"label"`
}

type xmlLabel struct {
	Group string `xml:"group"`
	Text  string `xml:"text"`
}

type xmlRow struct {
	SortOrder int    `xml:"sort_order"`
	Code      string `xml:"code"`
	R         int    `xml:"R"`
	G         int    `xml:"G"`
	B         int    `xml:"B"`
}

// XML renders events in the LiveTagPRO layout. Each distinct event type gets
// a ROWS entry with fresh colors, so output differs between calls.
func (e *Exporter) XML(events []model.Event) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrEmptyLedger
	}

	doc := xmlFile{
		Comment:   xml.Comment(xmlComment),
		SortInfo:  xmlSortInfo{SortType: sortType},
		Instances: make([]xmlInstance, 0, len(events)),
	}

	seen := make(map[string]struct{})
	for i, ev := range events {
		at := ev.MatchSecond()
		inst := xmlInstance{
			ID:     i,
			Code:   ev.EventType,
			Start:  formatNumber(at - windowSeconds),
			End:    formatNumber(at + windowSeconds),
			Labels: []xmlLabel{{Group: groupEvent, Text: ev.EventType}},
		}
		if ev.CrossOutcome != nil {
			inst.Labels = append(inst.Labels, xmlLabel{Group: groupCross, Text: string(*ev.CrossOutcome)})
		}
		if ev.ShotOutcome != nil {
			inst.Labels = append(inst.Labels, xmlLabel{Group: groupShot, Text: string(*ev.ShotOutcome)})
		}
		doc.Instances = append(doc.Instances, inst)

		if _, ok := seen[ev.EventType]; !ok {
			seen[ev.EventType] = struct{}{}
			doc.Rows = append(doc.Rows, xmlRow{
				SortOrder: len(doc.Rows) + 1,
				Code:      ev.EventType,
				R:         e.color(),
				G:         e.color(),
				B:         e.color(),
			})
		}
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close xml encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// XMLFileName returns the XML entry name for a base name.
func XMLFileName(base string) string {
	return base + xmlSuffix
}
