package main

import "github.com/theirongolddev/ladder/cmd"

func main() {
	cmd.Execute()
}
