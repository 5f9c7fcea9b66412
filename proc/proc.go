// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proc

import (
	"bytes"
	"os/exec"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/phkaeser/libbase-sub000/fault"
)

// Result - the outcome of one completed run
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Command - one program invocation
//
// a Command is single use: create, adjust, run, read the result
type Command struct {
	sync.Mutex // to protect against timer call back

	program     string
	arguments   []string
	directory   string
	environment []string
	timeout     time.Duration
	log         *logger.L

	cmd      *exec.Cmd
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	started  time.Time
	timer    *time.Timer
	timedOut bool
	finished bool
}

// New - describe a program invocation
func New(program string, arguments ...string) *Command {
	return &Command{
		program:   program,
		arguments: arguments,
		log:       logger.New("proc"),
	}
}

// SetDirectory - working directory for the process
func (c *Command) SetDirectory(directory string) {
	c.directory = directory
}

// SetEnvironment - replacement environment in "key=value" form
//
// nil keeps the parent environment
func (c *Command) SetEnvironment(environment []string) {
	c.environment = environment
}

// SetTimeout - kill the process if it runs longer
//
// zero means no limit
func (c *Command) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// Start - launch the process
func (c *Command) Start() error {
	c.Lock()
	defer c.Unlock()

	if "" == c.program {
		return fault.RequiredProgram
	}
	if nil != c.cmd {
		return fault.ProcessAlreadyStarted
	}

	cmd := exec.Command(c.program, c.arguments...)
	cmd.Dir = c.directory
	cmd.Env = c.environment
	cmd.Stdout = &c.stdout
	cmd.Stderr = &c.stderr

	c.log.Infof("start: %s %v", c.program, c.arguments)

	err := cmd.Start()
	if nil != err {
		c.log.Errorf("start: %s failed: %s", c.program, err)
		return fault.ProcessError("process start failed: " + err.Error())
	}

	c.cmd = cmd
	c.started = time.Now()

	if c.timeout > 0 {
		c.timer = time.AfterFunc(c.timeout, func() {
			c.Lock()
			defer c.Unlock()
			if c.finished {
				return
			}
			c.timedOut = true
			c.log.Warnf("timeout: %s after: %s", c.program, c.timeout)
			_ = cmd.Process.Kill()
		})
	}

	return nil
}

// Wait - block until the process finishes and collect the result
func (c *Command) Wait() (*Result, error) {
	c.Lock()
	if nil == c.cmd || c.finished {
		c.Unlock()
		return nil, fault.ProcessNotStarted
	}
	cmd := c.cmd
	c.Unlock()

	err := cmd.Wait()

	c.Lock()
	defer c.Unlock()

	c.finished = true
	if nil != c.timer {
		c.timer.Stop()
		c.timer = nil
	}

	result := &Result{
		Stdout:   c.stdout.Bytes(),
		Stderr:   c.stderr.Bytes(),
		ExitCode: 0,
		Duration: time.Since(c.started),
	}

	if c.timedOut {
		c.log.Errorf("finish: %s timed out after: %s", c.program, result.Duration)
		return nil, fault.ProcessTimedOut
	}

	if nil != err {
		exitError, ok := err.(*exec.ExitError)
		if !ok {
			c.log.Errorf("finish: %s failed: %s", c.program, err)
			return nil, fault.ProcessError("process wait failed: " + err.Error())
		}
		result.ExitCode = exitError.ProcessState.ExitCode()
	}

	c.log.Infof("finish: %s exit: %d elapsed: %s", c.program, result.ExitCode, result.Duration)
	return result, nil
}

// Run - Start and Wait in one call
func (c *Command) Run() (*Result, error) {
	err := c.Start()
	if nil != err {
		return nil, err
	}
	return c.Wait()
}

// Kill - terminate a running process
//
// Wait still has to be called to collect the outcome
func (c *Command) Kill() error {
	c.Lock()
	defer c.Unlock()

	if nil == c.cmd || c.finished {
		return fault.ProcessNotStarted
	}
	return c.cmd.Process.Kill()
}
