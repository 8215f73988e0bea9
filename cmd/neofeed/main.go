package main

import (
	"github.com/spacerocks/neofeed/internal/extractor/app"
)

var (
	version string
)

func main() {
	application := app.NewApp(version)
	application.Run()
}
