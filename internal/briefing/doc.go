// Package briefing turns captured facts into the short context a cleared
// session resumes from.
//
// A briefing contains:
//
//   - Detected phase: the status document's Phase, or "Unknown phase".
//
//   - Summary: one sentence naming the phase, the raw Next Steps value and
//     up to three recently modified files.
//
//   - Next steps: the Next Steps value as a single step when it mentions a
//     Task, otherwise its comma-separated parts; falling back to the first
//     three pending tasks.
//
//   - Notes: the capture time and task progress counts.
//
// Synthesis never fails. A panic while building the briefing is recovered
// and replaced by a checkpoint placeholder so the capture can continue.
package briefing
