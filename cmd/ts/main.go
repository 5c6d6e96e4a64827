package main

import "timescore/cmd/ts/root"

func main() {
	root.Execute()
}
