package main

import "github.com/oshokin/xcode-upkeep/cmd/localize/cmd"

func main() {
	cmd.Execute()
}
