package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/esg-sustainability/badminton-doubles-matchup/internal/matchup/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := matchup(); err != nil {
		logrus.Fatal(err)
	}
}

func matchup() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
