// Command gardenlog is the local garden tracker CLI.
package main

import "github.com/pottingshed/gardenlog/internal/cli"

func main() {
	cli.Execute()
}
