package main

import (
	"os"

	"github.com/pwkit/pwkit/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
