package housekeeping

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Onegaishimas/xcc-lattice/internal/facts"
)

// currentStatusBlock regenerates the "## Current Status" section
func (s *Store) currentStatusBlock(snap *Snapshot, now time.Time) []string {
	return []string{
		facts.CurrentStatusHeading,
		"- **Phase:** Context cleared and preserved",
		fmt.Sprintf("- **Last Session:** %s - Intelligent context clear (Session %s)",
			now.Format("2006-01-02 15:04"), snap.SessionID),
		fmt.Sprintf("- **Next Steps:** %s", strings.Join(head(snap.NextSteps, 2), " | ")),
		fmt.Sprintf("- **Active Document:** Resume from %s", s.Ref(ResumeFileName(snap.SessionID))),
		"- **Context Health:** Cleared and archived",
		"",
	}
}

// housekeepingStatusBlock regenerates the "## Housekeeping Status" section
func (s *Store) housekeepingStatusBlock(snap *Snapshot) []string {
	return []string{
		facts.HousekeepingStatusHeading,
		fmt.Sprintf("- **Last Checkpoint:** %s - Session %s",
			snap.Timestamp.Format(time.RFC3339), snap.SessionID),
		fmt.Sprintf("- **Last Transcript Save:** %s", s.Ref(TranscriptFileName(snap.SessionID))),
		"- **Context Health:** Cleared and ready for fresh start",
		fmt.Sprintf("- **Quick Resume:** %s", s.Ref(QuickResumeFile)),
		"",
	}
}

// UpdateStatusDocument rewrites the Current Status and Housekeeping
// Status sections of the status document in place. A missing document
// is left alone.
func (s *Store) UpdateStatusDocument(path string, snap *Snapshot, now time.Time) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read status document: %w", err)
	}

	updated := s.RewriteStatus(string(content), snap, now)
	if updated == string(content) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat status document: %w", err)
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write status document: %w", err)
	}
	return nil
}

// RewriteStatus returns content with both managed sections regenerated.
// Each section runs from its heading up to, but excluding, the next
// heading of any level. When only Current Status is present the
// Housekeeping block is inserted right after it. Content without a
// Current Status or Housekeeping Status heading is returned unchanged.
func (s *Store) RewriteStatus(content string, snap *Snapshot, now time.Time) string {
	lines := strings.Split(content, "\n")

	hasHousekeeping := false
	for _, line := range lines {
		if strings.TrimSpace(line) == facts.HousekeepingStatusHeading {
			hasHousekeeping = true
			break
		}
	}

	out := make([]string, 0, len(lines)+12)
	skipping := false
	for _, line := range lines {
		switch strings.TrimSpace(line) {
		case facts.CurrentStatusHeading:
			out = append(out, s.currentStatusBlock(snap, now)...)
			if !hasHousekeeping {
				out = append(out, s.housekeepingStatusBlock(snap)...)
			}
			skipping = true
			continue
		case facts.HousekeepingStatusHeading:
			out = append(out, s.housekeepingStatusBlock(snap)...)
			skipping = true
			continue
		}

		if skipping {
			if !facts.IsSectionBoundary(line) {
				continue
			}
			skipping = false
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
