package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderUsername is displayed when a comment's author profile no longer
// exists (account removed after posting).
const PlaceholderUsername = "deleted user"

// Author is the denormalized display identity of a comment's author,
// resolved via join at read time.
type Author struct {
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

// Comment is a single comment on an item. Authors holds zero or one entries:
// zero when the author's profile row is gone, one otherwise. The slice shape
// is deliberate — see NormalizeAuthor.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Authors   []Author  `json:"authors"`
}

// NewComment constructs a Comment with trimmed content, generated ID and
// current timestamp. Returns false when the trimmed content is empty.
func NewComment(itemID, userID uuid.UUID, content string) (*Comment, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, false
	}
	return &Comment{
		ID:        uuid.New(),
		ItemID:    itemID,
		UserID:    userID,
		Content:   trimmed,
		CreatedAt: time.Now().UTC(),
	}, true
}

// DisplayAuthor returns the author to render: the joined profile when
// present, otherwise the placeholder identity.
func (c *Comment) DisplayAuthor() Author {
	if len(c.Authors) > 0 {
		return c.Authors[0]
	}
	return Author{Username: PlaceholderUsername}
}

// NormalizeAuthor converts the author sub-object of a joined comment row
// into a zero-or-one element slice. Depending on the query path the join
// serializes the author as a bare object, a one-element array, or null;
// every caller gets the declared slice shape and nothing downstream has to
// care which form arrived.
func NormalizeAuthor(raw []byte) []Author {
	if len(raw) == 0 {
		return []Author{}
	}
	switch raw[0] {
	case '[':
		var authors []Author
		if err := json.Unmarshal(raw, &authors); err != nil || len(authors) == 0 {
			return []Author{}
		}
		return authors[:1]
	case '{':
		var author Author
		if err := json.Unmarshal(raw, &author); err != nil {
			return []Author{}
		}
		return []Author{author}
	default:
		// "null" or anything unexpected.
		return []Author{}
	}
}
