package entity

import "time"

// JobPosting is a single entry on the job board. Postings are seeded
// out-of-band and read-only from this service's perspective.
type JobPosting struct {
	ID         int64
	Title      string
	Company    string
	Location   string
	PostedDate time.Time // Date-only granularity.
}

// AlumniRecord is a single entry in the alumni directory. Directory records
// are maintained separately from accounts and carry no enforced link to them.
type AlumniRecord struct {
	ID             int64
	Name           string
	GraduationYear int
	Major          string
}
