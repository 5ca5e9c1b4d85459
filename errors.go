package bonddash

import "fmt"

// The error taxonomy distinguishes fatal load problems from recoverable
// computation ones. Commands abort the load on DataFormatError or
// EmptyDatasetError; an AlignmentError only empties the affected view; a
// zero denominator never fails anything, it leaves a NaN cell and a
// [Warning] behind.

// DataFormatError reports a malformed or missing source column. It is fatal
// for the load and always carries the offending file name.
type DataFormatError struct {
	File   string
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("malformed data in %s: %s", e.File, e.Reason)
}

// EmptyDatasetError reports that a load or a join produced zero usable rows.
type EmptyDatasetError struct {
	Table string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("dataset %q has no usable rows", e.Table)
}

// AlignmentError reports that two series have no overlapping dates, or that
// an asset is missing from one of the joined tables. Recoverable: the
// affected view renders an empty state.
type AlignmentError struct {
	Left, Right string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("no overlap between %s and %s", e.Left, e.Right)
}

// Warning records a recoverable computation incident, currently only a zero
// denominator in a fractional change. The affected cell holds NaN.
type Warning struct {
	Column string
	Date   Date
}

func (w Warning) String() string {
	return fmt.Sprintf("zero denominator for %s on %s", w.Column, w.Date)
}
