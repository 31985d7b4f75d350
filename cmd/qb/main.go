package main

import "questbox/cmd/qb/root"

func main() {
	root.Execute()
}
