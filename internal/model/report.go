package model

// Report is the outcome of generating tests for one source file.
type Report struct {
	Source    Source
	Status    FileStatus
	TestCount int
	Reason    string // why the file was skipped
	Error     error  // generation or write failure
	Hash      string // SHA-256 of the source, set when the batch is saved
}

// BatchResult aggregates reports for a directory run.
type BatchResult struct {
	Reports []Report
}

// Count returns how many reports have the given status.
func (b BatchResult) Count(status FileStatus) int {
	n := 0

	for _, r := range b.Reports {
		if r.Status == status {
			n++
		}
	}

	return n
}

// TotalTests sums the generated test cases across the batch.
func (b BatchResult) TotalTests() int {
	total := 0

	for _, r := range b.Reports {
		total += r.TestCount
	}

	return total
}
