package main

import "github.com/oshokin/xcode-upkeep/cmd/pbx-fix-resources/cmd"

func main() {
	cmd.Execute()
}
