package fs

import (
	"os"
	"path/filepath"

	"ripple-cli/term"
)

var HomeDir string
var HomeRippleDir string
var HomeAuthPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if override := os.Getenv("RIPPLE_HOME"); override != "" {
		HomeRippleDir = override
	} else if os.Getenv("RIPPLE_ENV") == "development" {
		HomeRippleDir = filepath.Join(home, ".ripple-home-dev")
	} else {
		HomeRippleDir = filepath.Join(home, ".ripple-home")
	}

	err = os.MkdirAll(HomeRippleDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeAuthPath = filepath.Join(HomeRippleDir, "auth.json")
	HomeLogPath = filepath.Join(HomeRippleDir, "ripple.log")
}
