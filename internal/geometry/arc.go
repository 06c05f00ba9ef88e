package geometry

// ArcAnchor is the fixed end of every progress sweep: the bottom of the dial.
const ArcAnchor = 180

// Sweep is a clockwise arc in degrees that always ends at ArcAnchor. Start may be
// negative; Normalized folds both ends into [0, 360).
type Sweep struct {
	Start int
	End   int
}

func (s Sweep) Length() int { return s.End - s.Start }

func (s Sweep) Empty() bool { return s.Length() <= 0 }

func (s Sweep) Normalized() (start, end int) {
	return wrapDegrees(s.Start), wrapDegrees(s.End)
}

// Angles converts the sweep into angle units for drawing.
func (s Sweep) Angles(t Turn) (start, end Angle) {
	return t.FromDegrees(s.Start), t.FromDegrees(s.End)
}

// ArcSweep maps a percentage onto a primary sweep of percent*maxDegrees/100
// ending at ArcAnchor. Anything above 100 spills into a second overflow sweep
// that restarts from zero length at 100%. The overflow wraps once: excess beyond
// another 100% draws a full overflow ring.
func ArcSweep(percent, maxDegrees int) (primary, overflow Sweep) {
	if maxDegrees <= 0 {
		maxDegrees = 360
	}
	if percent < 0 {
		percent = 0
	}
	main := percent
	if main > 100 {
		main = 100
	}
	extra := percent - main
	if extra > 100 {
		extra = 100
	}
	return sweepOf(main, maxDegrees), sweepOf(extra, maxDegrees)
}

func sweepOf(percent, maxDegrees int) Sweep {
	length := percent * maxDegrees / 100
	return Sweep{Start: ArcAnchor - length, End: ArcAnchor}
}

func wrapDegrees(d int) int {
	d %= 360
	if d < 0 {
		d += 360
	}
	return d
}
