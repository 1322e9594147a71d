package models

// RelationKind names a binary social relation between an actor and a target.
type RelationKind string

const (
	// RelationLike is the liked/not-liked relation between a user and an item.
	RelationLike RelationKind = "like"
	// RelationFollow is the following/not-following relation between two users.
	RelationFollow RelationKind = "follow"
)

// Projection is the client-observable state of a binary relation: the flag
// itself plus the counter displayed next to it. It is an optimistic
// projection — the value shown before the authoritative store confirms the
// mutation, not a confirmed count.
type Projection struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

// Toggle flips the relation and moves the counter one step in the same
// direction. Pure and synchronous: it runs strictly before any gateway call
// and its result is displayed regardless of how that call resolves.
func (p Projection) Toggle() Projection {
	if p.Active {
		return Projection{Active: false, Count: p.Count - 1}
	}
	return Projection{Active: true, Count: p.Count + 1}
}
