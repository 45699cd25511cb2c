package model

// BatchStatus represents the lifecycle of a single batch call
type BatchStatus string

const (
	// BatchStatusPending means the batch has been accepted but not started
	BatchStatusPending BatchStatus = "Pending"

	// BatchStatusResolving means playlist pages are being scraped
	BatchStatusResolving BatchStatus = "Resolving"

	// BatchStatusRunning means items are being fetched and transcoded
	BatchStatusRunning BatchStatus = "Running"

	// BatchStatusCompleted means every item succeeded
	BatchStatusCompleted BatchStatus = "Completed"

	// BatchStatusCompletedWithErrors means at least one item failed but some succeeded
	BatchStatusCompletedWithErrors BatchStatus = "CompletedWithErrors"

	// BatchStatusFailed means nothing was produced
	BatchStatusFailed BatchStatus = "Failed"
)

// String returns the string representation of BatchStatus
func (bs BatchStatus) String() string {
	return string(bs)
}

// IsActive returns true if the batch is still doing work
func (bs BatchStatus) IsActive() bool {
	return bs == BatchStatusResolving || bs == BatchStatusRunning
}

// IsFinished returns true if the batch reached a terminal state
func (bs BatchStatus) IsFinished() bool {
	return bs == BatchStatusCompleted || bs == BatchStatusCompletedWithErrors || bs == BatchStatusFailed
}
