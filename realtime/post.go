package realtime

import "sort"

// posted is a call handed to the loop goroutine, with ordering metadata.
type posted struct {
	fn       func()
	priority int
	seq      uint64
}

// sortPosts orders calls deterministically: higher priority first, then
// submission order.
func sortPosts(posts []posted) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].priority != posts[j].priority {
			return posts[i].priority > posts[j].priority
		}
		return posts[i].seq < posts[j].seq
	})
}

// collectPosts takes the pending calls, leaving an empty queue behind.
func (l *Loop) collectPosts() []posted {
	l.mu.Lock()
	defer l.mu.Unlock()
	posts := l.posts
	l.posts = make([]posted, 0, cap(posts))
	return posts
}

func (l *Loop) enqueue(fn func(), priority int, bounded bool) error {
	if fn == nil {
		return ErrNilFunc
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if bounded && len(l.posts) >= l.cfg.MaxPostsPerFrame {
		return ErrQueueFull
	}
	l.posts = append(l.posts, posted{fn: fn, priority: priority, seq: l.seq})
	l.seq++
	return nil
}
