package main

import (
	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/cmd"
)

func main() {
	cmd.Execute()
}
