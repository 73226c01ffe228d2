package main

import "github.com/goliatone/core.io-data-manager/cmd"

func main() {
	cmd.Execute()
}
