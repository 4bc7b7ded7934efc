// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
)

// logFile is the file receiving log messages
var logFile *os.File

// InitLogFile initialises logger writing to <dirout>/<fnkey>.log
func InitLogFile(dirout, fnkey string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	logFile, err = os.Create(filepath.Join(dirout, fnkey+".log"))
	if err != nil {
		return
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags)
	return
}

// FlushLog saves and closes log file
func FlushLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		log.SetOutput(os.Stderr)
	}
}

// LogErr logs error and returns stop flag
func LogErr(err error, msg string) (stop bool) {
	if err != nil {
		fullmsg := "ERROR: " + msg + " : " + err.Error()
		log.Print(fullmsg)
		io.PfRed("%s\n", fullmsg)
		return true
	}
	return false
}

// LogErrCond logs error and returns stop flag if condition is true
func LogErrCond(condition bool, msg string, prm ...interface{}) (stop bool) {
	if condition {
		fullmsg := "ERROR: " + io.Sf(msg, prm...)
		log.Print(fullmsg)
		io.PfRed("%s\n", fullmsg)
		return true
	}
	return false
}

// Logf writes a message to the log file; nothing is written if InitLogFile was not called
func Logf(msg string, prm ...interface{}) {
	if logFile == nil {
		return
	}
	log.Printf(msg, prm...)
}
