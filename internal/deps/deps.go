// Package deps reports whether the external programs quotefinder shells out
// to can be found.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency quotefinder relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	// Path is the resolved executable location when available.
	Path   string `json:"path,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// SummarizeRequirement describes the transcript extractor binary.
func SummarizeRequirement(command string) Requirement {
	return Requirement{
		Name:        "summarize",
		Command:     command,
		Description: "Extracts timestamped transcripts from video references",
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, CheckBinary(req))
	}
	return results
}

// CheckBinary evaluates a single requirement.
func CheckBinary(req Requirement) Status {
	cmd := strings.TrimSpace(req.Command)
	status := Status{
		Name:        req.Name,
		Command:     cmd,
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if cmd == "" {
		status.Detail = "command not configured"
		return status
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", cmd)
		return status
	}
	status.Available = true
	status.Path = path
	return status
}
