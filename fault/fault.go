// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised    = ProcessError("already initialised")
	DuplicateName         = ExistsError("duplicate name")
	IndexOutOfRange       = InvalidError("index out of range")
	InvalidLoggerChannel  = InvalidError("invalid logger channel")
	InvalidParameter      = InvalidError("invalid parameter")
	InvalidValue          = InvalidError("invalid value")
	MissingValue          = InvalidError("missing value")
	NotInitialised        = ProcessError("not initialised")
	ProcessAlreadyStarted = ProcessError("process already started")
	ProcessNotStarted     = ProcessError("process not started")
	ProcessTimedOut       = ProcessError("process timed out")
	RequiredLogDirectory  = InvalidError("log directory is required")
	RequiredLogFile       = InvalidError("log file is required")
	RequiredProgram       = InvalidError("program is required")
	UnknownName           = NotFoundError("unknown name")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
