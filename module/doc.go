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

// Package module provides the validated identifier of an application module.
//
// Structured application errors carry a module code together with a numeric
// error code. dresult renders the pair as "<module>-<errorCode>", e.g.
// "AUTH-1001" or "BILLING-42", so the module code itself must never contain
// a dash. Module codes are:
//
//   - upper-case ASCII letters, digits and underscores;
//   - starting with a letter;
//   - 2..32 characters long.
package module
