package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%d"
	PostsListKey  = "posts:list"
)

const (
	PostTTL      = 30 * time.Minute
	PostsListTTL = 2 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePostsList drops every cached posts listing. Listings are keyed
// per filter under a common prefix, so invalidation scans the prefix.
func InvalidatePostsList(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, PostsListKey+"*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

// ListKey builds the cache key for a filtered posts listing.
func ListKey(category, search string) string {
	return fmt.Sprintf("%s:%s:%s", PostsListKey, category, search)
}
