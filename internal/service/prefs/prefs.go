// Package prefs keeps local preferences such as recently used stickers.
package prefs

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

const RecentStickersKey = "quickchat-recent-stickers"

// RecentStickers is a most-recent-first list of sticker URLs with no size
// limit.
type RecentStickers struct {
	mu    sync.Mutex
	store KVStore
	key   string
}

func NewRecentStickers(store KVStore) *RecentStickers {
	return &RecentStickers{store: store, key: RecentStickersKey}
}

// Recent returns the stored list. Missing, unreadable or malformed data all
// read as an empty list.
func (r *RecentStickers) Recent() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Add moves url to the front, removing any earlier occurrence.
func (r *RecentStickers) Add(url string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := append([]string{url}, lo.Without(r.load(), url)...)

	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recent stickers: %v", err)
	}
	if err := r.store.Set(r.key, data); err != nil {
		return nil, fmt.Errorf("failed to save recent stickers: %v", err)
	}

	return list, nil
}

func (r *RecentStickers) load() []string {
	data, err := r.store.Get(r.key)
	if err != nil {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		return []string{}
	}

	return list
}

// Users hands out the recent stickers of each user of a shared store. Every
// user gets one RecentStickers, so concurrent composers of the same user do
// not overwrite each other.
type Users struct {
	store KVStore

	mu    sync.Mutex
	byUID map[string]*RecentStickers
}

func NewUsers(store KVStore) *Users {
	return &Users{store: store, byUID: make(map[string]*RecentStickers)}
}

func (u *Users) For(uid string) *RecentStickers {
	u.mu.Lock()
	defer u.mu.Unlock()

	r, ok := u.byUID[uid]
	if !ok {
		r = &RecentStickers{store: u.store, key: RecentStickersKey + "/" + uid}
		u.byUID[uid] = r
	}
	return r
}

func (u *Users) Recent(uid string) []string {
	return u.For(uid).Recent()
}
