package main

import (
	"flag"

	"github.com/KianoushAmirpour/detection_server/internal/application"
	config "github.com/KianoushAmirpour/detection_server/internal/infrastructure/configs"
)

func main() {

	envFile := flag.String("env", ".env", "path to an optional env file")
	flag.Parse()

	cfg, err := config.LoadConfigs(*envFile)
	if err != nil {
		panic(err)
	}

	app := application.App{Cfg: cfg}
	app.Run()

}
