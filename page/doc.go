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

// Package page provides Paged, an immutable wrapper bundling one page of
// query results with enough metadata to reconstruct the pagination state.
//
// Paged is a data holder, not a paginator: slicing happens in the query
// layer. It only derives two values:
//
//   - TotalPages = ceil(TotalCount / PageSize);
//   - ItemsCount = number of items present on this page.
//
// New rejects a non-positive page size, so TotalPages is always defined.
package page
