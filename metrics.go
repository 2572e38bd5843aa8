package ccitt

// MetricsRecorder is an interface for tracking block validation.
// RecordBlockChecked tracks the size of every block inspected.
// RecordCRCMismatch counts blocks whose trailer did not match.
// RecordBlockError tracks the type of any other validation error.
type MetricsRecorder interface {
	RecordBlockChecked(size int)
	RecordCRCMismatch()
	RecordBlockError(errorType string)
}
