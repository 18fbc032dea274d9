package main

import (
	"os"

	"apod-wallpaper/app"
	"apod-wallpaper/utils"
)

func main() {
	cmd := app.NewRootCommand(os.Stdout, app.Options{})
	if err := cmd.Execute(); err != nil {
		utils.NewConsole(os.Stderr).Failure(err)
		os.Exit(1)
	}
}
