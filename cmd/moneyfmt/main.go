package main

import (
	"github.com/sirupsen/logrus"
)

type App struct {
	logger *logrus.Logger
	rules  []string
	lang   string
}

func main() {
	a := App{logger: logrus.StandardLogger()}

	cmd := a.RootCmd()
	if err := cmd.Execute(); err != nil {
		a.logger.Fatal(err)
	}
}
