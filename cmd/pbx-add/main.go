package main

import "github.com/oshokin/xcode-upkeep/cmd/pbx-add/cmd"

func main() {
	cmd.Execute()
}
