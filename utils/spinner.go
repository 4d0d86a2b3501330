package utils

import (
	"time"

	"github.com/briandowns/spinner"
)

var scanSpinner *spinner.Spinner

func StartSpinner() {
	scanSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	scanSpinner.Suffix = " scanning subscription..."
	scanSpinner.Start()
}

func StopSpinner() {
	if scanSpinner != nil {
		scanSpinner.Stop()
		scanSpinner = nil
	}
}
