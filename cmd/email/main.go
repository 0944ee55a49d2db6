package main

import (
	stdLog "log"

	"github.com/Astemirdum/library-borrowing/email/app"
	"github.com/Astemirdum/library-borrowing/email/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using the environment: ", err)
	}
	cfg := config.NewConfig(config.WithLogLevel(zapcore.DebugLevel))

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("email: ", err)
	}
}
