package sim

// IdleSubject marks a timeline segment during which the CPU ran nothing.
const IdleSubject = "Idle"

// GanttSegment is one contiguous interval [Start,End) of simulated time
// attributed to a process or to idleness.
type GanttSegment struct {
	Subject string `json:"subject"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// Duration returns End - Start.
func (g GanttSegment) Duration() int {
	return g.End - g.Start
}

// mergeAdjacentSegments collapses consecutive segments that share a subject
// and touch. Round robin emits one segment per quantum slice; a process that
// keeps the CPU across slices should read as a single interval.
func mergeAdjacentSegments(segments []GanttSegment) []GanttSegment {
	if len(segments) == 0 {
		return segments
	}
	merged := make([]GanttSegment, 0, len(segments))
	merged = append(merged, segments[0])
	for _, seg := range segments[1:] {
		last := &merged[len(merged)-1]
		if seg.Subject == last.Subject && seg.Start == last.End {
			last.End = seg.End
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

// fillIdleGaps walks busy segments in start order and inserts an Idle segment
// over every gap between one segment's end and the next one's start. The
// timeline starts at the first busy segment; no leading idle is inserted.
func fillIdleGaps(segments []GanttSegment) []GanttSegment {
	if len(segments) == 0 {
		return segments
	}
	filled := make([]GanttSegment, 0, len(segments))
	filled = append(filled, segments[0])
	for _, seg := range segments[1:] {
		prevEnd := filled[len(filled)-1].End
		if seg.Start > prevEnd {
			filled = append(filled, GanttSegment{Subject: IdleSubject, Start: prevEnd, End: seg.Start})
		}
		filled = append(filled, seg)
	}
	return filled
}
