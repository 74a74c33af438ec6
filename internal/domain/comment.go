package domain

import "time"

// AdminResponseName is the author name shown on admin replies
const AdminResponseName = "Admin Response"

// Comment is a single comment on a post. ParentCommentID nil means top-level.
type Comment struct {
	ID              string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	PostID          int64     `gorm:"column:post_id;index" json:"post_id"`
	UserID          string    `gorm:"column:user_id;type:varchar(36);index" json:"user_id"`
	AuthorName      string    `gorm:"column:author_name;type:varchar(100)" json:"author_name"`
	AuthorEmail     string    `gorm:"column:author_email;type:varchar(255)" json:"author_email"`
	AuthorAvatar    string    `gorm:"column:author_avatar;type:varchar(500)" json:"author_avatar"`
	Text            string    `gorm:"column:text;type:text;not null" json:"text"`
	ParentCommentID *string   `gorm:"column:parent_comment_id;type:varchar(36);index" json:"parent_comment_id"`
	CreatedAt       time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }

// IsTopLevel reports whether the comment has no parent
func (c *Comment) IsTopLevel() bool {
	return c.ParentCommentID == nil
}

// CommentThread is a top-level comment with its direct replies, oldest first
type CommentThread struct {
	*Comment
	Replies   []*Comment `json:"replies"`
	PostTitle string     `json:"post_title,omitempty"`
}

// AdminComments is the admin view across all posts
type AdminComments struct {
	Threads []*CommentThread `json:"threads"`
	// Orphans are replies whose parent is missing from the result set
	Orphans []*Comment `json:"orphans"`
}

// CreateCommentRequest is the public comment payload
type CreateCommentRequest struct {
	Text            string  `json:"text" binding:"required"`
	ParentCommentID *string `json:"parent_comment_id"`
}

// ReplyRequest is the admin reply payload
type ReplyRequest struct {
	Text string `json:"text" binding:"required"`
}
