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

// Package apis defines the public Go-level contracts of dresult.
//
// It holds the capability interfaces that application errors implement so
// that dresult can translate them into outcomes, the Mapper contract used
// by transport adapters, and the small view types that adapters put on the
// wire.
//
// This package must remain lightweight: it only contains interfaces and
// plain data types, and it never imports the concrete outcome type.
package apis
