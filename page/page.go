/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package page

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class of every page construction failure.
var Error = errs.Class("page")

var (
	// ErrInvalidPageSize is returned when the page size is zero or negative.
	ErrInvalidPageSize = errors.New("page size must be positive")

	// ErrNegativeTotal is returned when the total count is negative.
	ErrNegativeTotal = errors.New("total count must not be negative")

	// ErrNegativePage is returned when the current page index is negative.
	ErrNegativePage = errors.New("current page must not be negative")
)

// Paged is one page of items plus pagination metadata.
//
// The zero value is an empty page with zero page size; it reports zero
// total pages.
type Paged[T any] struct {
	items       []T
	totalCount  int64
	pageSize    int
	currentPage int
}

// New validates the metadata and returns a Paged. The items slice is
// copied, so later changes by the caller are not observed.
//
// currentPage is 1-based by convention; 0 is accepted for "no page
// requested".
func New[T any](items []T, totalCount int64, pageSize, currentPage int) (Paged[T], error) {
	switch {
	case pageSize <= 0:
		return Paged[T]{}, Error.Wrap(fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize))
	case totalCount < 0:
		return Paged[T]{}, Error.Wrap(fmt.Errorf("%w: got %d", ErrNegativeTotal, totalCount))
	case currentPage < 0:
		return Paged[T]{}, Error.Wrap(fmt.Errorf("%w: got %d", ErrNegativePage, currentPage))
	}

	var cp []T
	if items != nil {
		cp = make([]T, len(items))
		copy(cp, items)
	}
	return Paged[T]{
		items:       cp,
		totalCount:  totalCount,
		pageSize:    pageSize,
		currentPage: currentPage,
	}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew[T any](items []T, totalCount int64, pageSize, currentPage int) Paged[T] {
	p, err := New(items, totalCount, pageSize, currentPage)
	if err != nil {
		panic(err)
	}
	return p
}

// Items returns a copy of the items on this page.
func (p Paged[T]) Items() []T {
	if p.items == nil {
		return nil
	}
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// TotalCount returns the number of items across all pages.
func (p Paged[T]) TotalCount() int64 { return p.totalCount }

// PageSize returns the requested maximum number of items per page.
func (p Paged[T]) PageSize() int { return p.pageSize }

// CurrentPage returns the current page index.
func (p Paged[T]) CurrentPage() int { return p.currentPage }

// TotalPages returns ceil(TotalCount / PageSize), or 0 for the zero value.
func (p Paged[T]) TotalPages() int {
	if p.pageSize <= 0 || p.totalCount <= 0 {
		return 0
	}
	size := int64(p.pageSize)
	return int((p.totalCount + size - 1) / size)
}

// ItemsCount returns the number of items present on this page,
// independent of TotalCount.
func (p Paged[T]) ItemsCount() int { return len(p.items) }

// HasNext reports whether a page after the current one exists.
func (p Paged[T]) HasNext() bool { return p.currentPage < p.TotalPages() }

// HasPrevious reports whether a page before the current one exists.
func (p Paged[T]) HasPrevious() bool { return p.currentPage > 1 }

// jsonPaged is the wire shape of a Paged.
type jsonPaged[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	ItemsCount  int   `json:"itemsCount"`
}

// MarshalJSON renders the page together with its derived fields. A nil
// items slice is rendered as an empty array.
func (p Paged[T]) MarshalJSON() ([]byte, error) {
	items := p.items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(jsonPaged[T]{
		Items:       items,
		TotalCount:  p.totalCount,
		PageSize:    p.pageSize,
		CurrentPage: p.currentPage,
		TotalPages:  p.TotalPages(),
		ItemsCount:  len(p.items),
	})
}

// UnmarshalJSON decodes the wire shape, ignoring the derived fields, and
// validates the metadata the same way New does.
func (p *Paged[T]) UnmarshalJSON(b []byte) error {
	var w jsonPaged[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return Error.Wrap(err)
	}
	np, err := New(w.Items, w.TotalCount, w.PageSize, w.CurrentPage)
	if err != nil {
		return err
	}
	*p = np
	return nil
}
