package main

import "github.com/oshokin/drivesafe/cmd/drivesafe-watch/cmd"

func main() {
	cmd.Execute()
}
