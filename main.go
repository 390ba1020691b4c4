package main

import (
	"log"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/cmd"
	"ripple-cli/fs"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injections to avoid circular imports
	auth.SetApiClient(api.Client)
	api.SetTokenProvider(auth.Token)

	// diagnostics go to a rotating file, never the terminal
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}

func main() {
	cmd.Execute()
}
