package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"damsync/internal/domain"
)

// ItemIterator streams search results lazily, one page at a time. It is
// consumed from a single goroutine and is not restartable: once Next
// returns false the sequence is over, either exhausted or failed (check
// Err). A skip count suppresses that many leading matches; the first
// fetch lands directly on the page containing the first unskipped
// entry and earlier entries on that page are discarded.
type ItemIterator struct {
	source   Source
	site     string
	skip     int
	pageSize int
	delay    time.Duration
	logger   *slog.Logger

	emitted  int
	consumed int
	hits     int
	page     []domain.ItemRef
	offset   int
	idx      int
	started  bool
	done     bool
	err      error
	current  domain.ItemRef
}

func NewItemIterator(source Source, site string, skip, pageSize int, delay time.Duration, logger *slog.Logger) *ItemIterator {
	return &ItemIterator{
		source:   source,
		site:     site,
		skip:     skip,
		pageSize: pageSize,
		delay:    delay,
		logger:   logger.With("site", site),
	}
}

// offsets computes where the next unseen entry lives in upstream page
// coordinates. Pages are numbered from 1. The identity
// skip+emitted == (page-1)*pageSize + offset always holds.
func offsets(emitted, skip, pageSize int) (offset, page int) {
	startAt := skip + emitted
	return startAt % pageSize, startAt/pageSize + 1
}

// Next advances to the next item. It fetches pages on demand and never
// retries: a search failure ends the sequence with Err set.
func (it *ItemIterator) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}

	for {
		if it.page == nil {
			if !it.fetchPage(ctx) {
				return false
			}
		}

		for it.idx < len(it.page) {
			i := it.idx
			it.idx++
			if i < it.offset {
				continue
			}

			it.consumed++
			it.current = it.page[i]
			it.emitted++
			if it.consumed >= it.Total() {
				it.done = true
			}
			return true
		}

		// Covers skip >= hits, where a fetched page holds nothing past
		// the offset and the adjusted total is already met.
		if it.consumed >= it.Total() {
			it.done = true
			return false
		}
		it.page = nil
	}
}

func (it *ItemIterator) fetchPage(ctx context.Context) bool {
	if it.started && it.delay > 0 {
		select {
		case <-ctx.Done():
			it.err = ctx.Err()
			return false
		case <-time.After(it.delay):
		}
	}

	offset, page := offsets(it.emitted, it.skip, it.pageSize)
	result, err := it.source.Search(ctx, it.site, page, it.pageSize)
	if err != nil {
		it.err = fmt.Errorf("search page %d: %w", page, err)
		return false
	}

	if len(result.Items) == 0 {
		it.done = true
		return false
	}

	it.started = true
	it.hits = result.Hits
	it.page = result.Items
	it.offset = offset
	it.idx = 0

	it.logger.Debug("fetched search page",
		"page", page,
		"entries", len(result.Items),
		"hits", it.hits,
		"emitted", it.emitted,
	)
	return true
}

// Item returns the item emitted by the last successful Next.
func (it *ItemIterator) Item() domain.ItemRef {
	return it.current
}

// Total reports the number of matches remaining after the skip count,
// valid once the first page has been fetched.
func (it *ItemIterator) Total() int {
	if it.skip > 0 {
		return it.hits - it.skip
	}
	return it.hits
}

// Err returns the error that terminated the sequence, if any.
func (it *ItemIterator) Err() error {
	return it.err
}
