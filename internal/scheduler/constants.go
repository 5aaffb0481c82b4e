package scheduler

// Log messages
const (
	LogMsgJobFailed   = "Scheduled job returned an error"
	LogMsgJobPanicked = "Scheduled job panicked, tick skipped"
)
