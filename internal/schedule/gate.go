package schedule

import "time"

// postInterval is the minimum number of whole days between posts.
const postInterval = 2

// ShouldPostToday reports whether a post is due: always when no post has
// been made yet, otherwise when at least two whole days have elapsed since
// the last post date. An unparseable date counts as due.
func ShouldPostToday(now time.Time, lastPostDate string) bool {
	if lastPostDate == "" {
		return true
	}
	last, err := time.ParseInLocation("2006-01-02", lastPostDate, now.Location())
	if err != nil {
		return true
	}
	return DaysSince(now, last) >= postInterval
}

// DaysUntilNext returns how many days remain before the next scheduled post,
// never negative.
func DaysUntilNext(now time.Time, lastPostDate string) int {
	last, err := time.ParseInLocation("2006-01-02", lastPostDate, now.Location())
	if err != nil {
		return 0
	}
	remaining := postInterval - DaysSince(now, last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DaysSince counts whole days elapsed between last and now.
func DaysSince(now, last time.Time) int {
	return int(now.Sub(last).Hours() / 24)
}
