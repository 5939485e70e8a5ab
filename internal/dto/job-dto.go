package dto

// JobFilter carries the public search parameters. Empty fields mean no
// filter. JobType is accepted from the AJAX endpoint but is not applied
// as a filter yet, matching the current frontend contract.
type JobFilter struct {
	Query    string
	Location string
	JobType  string
}

// ApplyJobInput is the parsed multipart apply form. CV holds the raw
// uploaded bytes; only the stored reference ends up in the record.
type ApplyJobInput struct {
	JobID       string
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	CVFilename  string
	CV          []byte
}

// FormResponse is the envelope every public form and AJAX endpoint returns.
type FormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JobSummary is one entry of the AJAX jobs payload. Description is
// truncated to 100 characters and PostedAt is human formatted.
type JobSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PostedAt    string `json:"posted_at"`
}

type JobsAjaxResponse struct {
	Success bool         `json:"success"`
	Jobs    []JobSummary `json:"jobs"`
}
