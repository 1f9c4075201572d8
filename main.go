package main

import "github.com/ValentinKolb/oarr/cmd"

func main() {
	cmd.Execute()
}
