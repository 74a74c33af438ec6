package service

import (
	"slices"

	"github.com/yuriblog/blog-backend/internal/domain"
)

// BuildThreads groups a flat comment list into top-level comments with
// their direct replies.
//
// Top-level comments keep input order (callers query newest first).
// Replies are sorted oldest first. A reply whose parent is not a
// top-level comment in the input is left out; see Orphans.
// The input slice and its comments are not modified.
func BuildThreads(comments []*domain.Comment) []*domain.CommentThread {
	threads := make([]*domain.CommentThread, 0)
	byID := make(map[string]*domain.CommentThread)

	for _, c := range comments {
		if c == nil || !c.IsTopLevel() {
			continue
		}
		thread := &domain.CommentThread{Comment: c, Replies: []*domain.Comment{}}
		threads = append(threads, thread)
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = thread
		}
	}

	for _, c := range comments {
		if c == nil || c.IsTopLevel() {
			continue
		}
		if thread, ok := byID[*c.ParentCommentID]; ok {
			thread.Replies = append(thread.Replies, c)
		}
	}

	for _, thread := range threads {
		slices.SortStableFunc(thread.Replies, func(a, b *domain.Comment) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}

	return threads
}

// Orphans returns the replies BuildThreads leaves out, in input order.
// This includes replies to replies.
func Orphans(comments []*domain.Comment) []*domain.Comment {
	topLevel := make(map[string]struct{})
	for _, c := range comments {
		if c != nil && c.IsTopLevel() {
			topLevel[c.ID] = struct{}{}
		}
	}

	orphans := make([]*domain.Comment, 0)
	for _, c := range comments {
		if c == nil || c.IsTopLevel() {
			continue
		}
		if _, ok := topLevel[*c.ParentCommentID]; !ok {
			orphans = append(orphans, c)
		}
	}
	return orphans
}
