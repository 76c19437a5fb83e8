package main

import "github.com/oshokin/drivesafe/cmd/drivesafe-sim/cmd"

func main() {
	cmd.Execute()
}
