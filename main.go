package main

import "github.com/KaramelBytes/strokelens-cli/cmd"

func main() {
	cmd.Execute()
}
