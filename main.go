package main

import "github.com/jsphweid/scorespan/cmd"

func main() {
	cmd.Execute()
}
