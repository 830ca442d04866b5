package services

import "context"

// EventKind identifies a domain action that may produce notifications.
type EventKind string

const (
	EventLike        EventKind = "like"
	EventComment     EventKind = "comment"
	EventNewPost     EventKind = "new_post"
	EventNewFollower EventKind = "new_follower"
)

// Event is passed explicitly from each mutating operation into the
// notification fan-out. There is no implicit dispatch: every call site
// constructs the event it emits, so tests can see and assert on all of
// them.
type Event struct {
	Kind    EventKind
	ActorID uint

	// PostID and PostAuthorID are set for like, comment and new_post
	// events.
	PostID       string
	PostAuthorID uint

	// TargetUserID is the followee for new_follower events.
	TargetUserID uint
}

// Dispatcher consumes domain events. Implementations are best effort:
// Dispatch never returns an error to the triggering action.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}
