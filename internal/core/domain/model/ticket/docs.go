// Package ticket implements the support ticket aggregate: a categorized,
// prioritized conversation between the partner and platform support with
// the workflow open -> in_progress -> resolved -> closed.
package ticket
