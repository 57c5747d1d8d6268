package main

import "taskflow_backend/internal/app"

func main() {
	app.Run()
}
