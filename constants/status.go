package constants

// JobStatus is the canonical status for rows in verification_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"   // optional: queued for processing
	JobStatusRunning  JobStatus = "RUNNING"  // in progress
	JobStatusOCROK    JobStatus = "OCR_OK"   // stage 1 completed (region text recognized)
	JobStatusAnalyzed JobStatus = "ANALYZED" // stage 2 completed (dates + consistency + detections)
	JobStatusFailed   JobStatus = "FAILED"   // terminal failure
)

// JobStatuses lists every value accepted by the verification_job schema.
func JobStatuses() []string {
	return []string{
		string(JobStatusQueued),
		string(JobStatusRunning),
		string(JobStatusOCROK),
		string(JobStatusAnalyzed),
		string(JobStatusFailed),
	}
}
