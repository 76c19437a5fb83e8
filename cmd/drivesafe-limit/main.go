package main

import "github.com/oshokin/drivesafe/cmd/drivesafe-limit/cmd"

func main() {
	cmd.Execute()
}
