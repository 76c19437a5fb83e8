package main

import "github.com/oshokin/drivesafe/cmd/drivesafe-server/cmd"

func main() {
	cmd.Execute()
}
