package main

import "github.com/bivsbon/wyag/cmd/wyag/cmd"

func main() {
	cmd.Execute()
}
