//go:build tinygo

package main

import (
	"slowtime/app"
	"slowtime/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
