package main

import "github.com/Pallavikumarimdb/mcp-use/cmd"

func main() {
	cmd.Execute()
}
