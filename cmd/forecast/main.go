// Command forecast runs jade forecasts from the terminal.
package main

import "github.com/warp/jade-forecast/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
