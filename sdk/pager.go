package sdk

import (
	"context"
	"net/http"
)

// PageFetcher fetches one page. continuation is empty for the first page and
// otherwise the value returned with the previous page. It returns the page and
// the continuation for the next one; an empty continuation ends iteration.
type PageFetcher[T any] func(ctx context.Context, continuation string) (T, string, error)

// Pager iterates over the pages of a list operation.
// A Pager is not safe for concurrent use.
type Pager[T any] struct {
	fetch        PageFetcher[T]
	continuation string
	done         bool
}

// NewPager returns a pager driven by fetch.
func NewPager[T any](fetch PageFetcher[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// More reports whether another page can be fetched.
func (p *Pager[T]) More() bool {
	return !p.done
}

// NextPage fetches the next page. After the last page it returns ErrNoMorePages.
// On error the pager stays on the same page, so the call can be retried.
func (p *Pager[T]) NextPage(ctx context.Context) (T, error) {
	var zero T
	if p.done {
		return zero, ErrNoMorePages
	}

	page, next, err := p.fetch(ctx, p.continuation)
	if err != nil {
		return zero, err
	}

	if next == "" || next == p.continuation {
		p.done = true
	}
	p.continuation = next

	return page, nil
}

// All fetches every remaining page.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	var pages []T
	for p.More() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return pages, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// NewNextLinkPager returns a pager for ARM list operations. The first page is
// requested with first; every following page is a GET of the next link the
// previous page returned.
func NewNextLinkPager[T any](c *Client, first func() (*Request, error), nextLink func(*T) string) *Pager[*T] {
	return NewPager(func(ctx context.Context, continuation string) (*T, string, error) {
		var (
			req *Request
			err error
		)
		if continuation == "" {
			req, err = first()
			if err != nil {
				return nil, "", err
			}
		} else {
			req = c.NewRequest(http.MethodGet, continuation)
		}

		page, err := Do[T](ctx, c, req, http.StatusOK)
		if err != nil {
			return nil, "", err
		}
		return page, nextLink(page), nil
	})
}

// NextLink dereferences an optional next link.
func NextLink(link *string) string {
	if link == nil {
		return ""
	}
	return *link
}
