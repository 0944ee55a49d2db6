package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/app"
	"github.com/Astemirdum/library-borrowing/borrowing/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using the environment: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("borrowing: ", err)
	}
}
