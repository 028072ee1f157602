package main

import "github.com/ValentinKolb/kvstore/cmd"

func main() {
	cmd.Execute()
}
