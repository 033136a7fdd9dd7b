package main

import "github.com/inovacc/countries/cmd"

func main() {
	cmd.Execute()
}
