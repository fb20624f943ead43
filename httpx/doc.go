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

// Package httpx writes dresult outcomes as JSON HTTP responses.
//
// The status code comes from an apis.Mapper; the body follows a fixed shape:
//
//	ok:     {"message": ..., ["data": ...,] "succeeded": true}
//	others: {"message": ..., ["data": ...,] "succeeded": false, "code": ...}
//
// The data field is present only for generic outcomes (dresult.Of).
package httpx
