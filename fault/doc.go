// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Also provides the fatal assertion routines used by the container
// packages when an internal invariant is violated.  Recoverable
// conditions caused by bad caller data are ordinary error returns,
// only programming errors reach the panic path.
package fault
