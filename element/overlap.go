// SPDX-License-Identifier: MIT

package element

import "fmt"

// Overlap classifies how an element relates to an Interval.
type Overlap uint8

const (
	// NoOverlap: the element is not defined anywhere on the interval.
	NoOverlap Overlap = iota
	// SegmentStartContained: a segment starting inside the interval and
	// ending after it.
	SegmentStartContained
	// SegmentEndContained: a segment starting before the interval and ending
	// inside it.
	SegmentEndContained
	// SegmentFullyContained: a segment whose support lies inside the interval
	// without covering all of it.
	SegmentFullyContained
	// SegmentSupportContainsInterval: a segment defined over the whole interval.
	SegmentSupportContainsInterval
	// PointInside: a point at the time of a point interval, or strictly
	// inside a segment interval.
	PointInside
)

var overlapNames = [...]string{
	NoOverlap:                      "NoOverlap",
	SegmentStartContained:          "SegmentStartContained",
	SegmentEndContained:            "SegmentEndContained",
	SegmentFullyContained:          "SegmentFullyContained",
	SegmentSupportContainsInterval: "SegmentSupportContainsInterval",
	PointInside:                    "PointInside",
}

func (o Overlap) String() string {
	if int(o) < len(overlapNames) {
		return overlapNames[o]
	}
	return fmt.Sprintf("Overlap(%d)", uint8(o))
}
