package main

import "github.com/dmitrymomot/weibo/cmd/weibo/cmd"

func main() {
	cmd.Execute()
}
