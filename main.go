package main

import "github.com/saveup-app/saveup/cmd"

func main() {
	cmd.Execute()
}
