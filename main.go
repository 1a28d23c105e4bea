package main

import "github.com/ethanolivertroy/sizeprof/cmd"

func main() {
	cmd.Execute()
}
