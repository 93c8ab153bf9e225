package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix      = "post:%d"
	PostsListKeyPrefix = "posts:list"
	TagKeyPrefix       = "posts:tag:%s"
)

const (
	PostTTL = 30 * time.Minute
	ListTTL = 1 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// PostsListKey is the key for the default (first page) post listing.
func PostsListKey(_ context.Context) string {
	return PostsListKeyPrefix
}

func TagKey(tag string) string {
	return fmt.Sprintf(TagKeyPrefix, tag)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the single-post entry and the list entry; both
// embed denormalized counters that a write just changed.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostsListKey(ctx))
}
