package entity

import (
	"slices"
	"time"
)

// Post is an entry in the social feed.
type Post struct {
	ID        string        `json:"id"`
	Author    PostAuthor    `json:"author"`
	Text      string        `json:"text"`
	ImageURL  string        `json:"imageUrl,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Likes     []string      `json:"likes"` // Set of user ids, stored in insertion order.
	Comments  []PostComment `json:"comments"`
}

// PostAuthor is the author snapshot of a post.
type PostAuthor struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProfilePicURL string `json:"profilePicUrl"`
	Role          Role   `json:"role"`
}

// PostComment is an append-only comment on a post.
type PostComment struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
	Commenter PostAuthor `json:"commenter"`
}

// AuthorOf builds the feed snapshot for a user.
func AuthorOf(u *User) PostAuthor {
	return PostAuthor{ID: u.ID, Name: u.Name, ProfilePicURL: u.ProfilePicURL, Role: u.Role}
}

// ToggleLike flips userID's membership in the like set and reports whether it is now liked.
func (p *Post) ToggleLike(userID string) bool {
	if i := slices.Index(p.Likes, userID); i >= 0 {
		p.Likes = slices.Delete(p.Likes, i, i+1)
		return false
	}

	p.Likes = append(p.Likes, userID)

	return true
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID string) bool {
	return slices.Contains(p.Likes, userID)
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}

	out := *p
	out.Likes = slices.Clone(p.Likes)
	out.Comments = slices.Clone(p.Comments)

	return &out
}
