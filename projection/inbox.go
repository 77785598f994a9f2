// Package projection builds local read-side views from observed state.
// It never mutates domain state: views are recomputed wholesale from
// each delivered snapshot, matching the subscribe-and-replace read
// contract of the stores.
package projection

import (
	"sort"

	"messenger-lab/domain"
)

// Inbox is a display ordering of one user's conversation summaries.
type Inbox struct {
	Summaries []domain.ConversationSummary
	Unread    int
}

// BuildInbox orders summaries by latest activity, newest first, and
// counts conversations with an unread latest message. The input slice
// is not modified.
func BuildInbox(summaries []domain.ConversationSummary) Inbox {
	ordered := make([]domain.ConversationSummary, len(summaries))
	copy(ordered, summaries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LatestAt.After(ordered[j].LatestAt)
	})

	unread := 0
	for _, summary := range ordered {
		if !summary.IsRead {
			unread++
		}
	}
	return Inbox{Summaries: ordered, Unread: unread}
}
