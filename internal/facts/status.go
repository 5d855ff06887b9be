package facts

import (
	"os"
	"strings"
)

// Section headings in the status document
const (
	CurrentStatusHeading      = "## Current Status"
	HousekeepingStatusHeading = "## Housekeeping Status"
)

// IsSectionBoundary reports whether line is an ATX heading of any level,
// which ends the current section
func IsSectionBoundary(line string) bool {
	line = strings.TrimRight(line, "\r")
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}

	level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
	if level == 0 || level > 6 {
		return false
	}
	rest := trimmed[level:]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// ParseStatus extracts key/value pairs from the "## Current Status" section
func ParseStatus(content string) StatusFacts {
	status := StatusFacts{}
	inStatus := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == CurrentStatusHeading {
			inStatus = true
			continue
		}
		if !inStatus {
			continue
		}
		if IsSectionBoundary(line) {
			break
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.Trim(key, "- *")
		if key == "" {
			continue
		}
		// "- **Key:** value" leaves the closing emphasis on the value side
		status[key] = strings.TrimSpace(strings.Trim(strings.TrimSpace(value), "*"))
	}

	return status
}

// ReadStatus reads the status document. A missing or unreadable document
// yields an empty map.
func (r *Reader) ReadStatus() StatusFacts {
	content, err := os.ReadFile(r.statusPath)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn().Err(err).Str("path", r.statusPath).Msg("status document unreadable")
		}
		return StatusFacts{}
	}
	return ParseStatus(string(content))
}
