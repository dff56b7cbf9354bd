package main

import "github.com/halouxiaoyu/survey_backend/cmd"

func main() {
	cmd.Execute()
}
