package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var loadedEnvFiles []string

// envFiles lists the overlay files, later files win. The lambda task root is
// searched first so a packaged .env is honoured when the cwd differs.
func envFiles() []string {
	files := make([]string, 0, 4)
	if root := os.Getenv("LAMBDA_TASK_ROOT"); root != "" {
		files = append(files, filepath.Join(root, ".env"))
	}
	return append(files, ".env", ".env.local")
}

func loadEnv() {
	files, err := loadEnvFiles(envFiles())
	if err != nil {
		panic(err.Error())
	}

	loadedEnvFiles = files
}

func loadEnvFiles(envfiles []string) ([]string, error) {
	loaded := make([]string, 0, len(envfiles))

	for _, envfile := range envfiles {
		absPath, err := filepath.Abs(envfile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get absolute path of env file: %s", envfile)
		}

		file, err := os.Stat(absPath)
		if err != nil || file.IsDir() {
			continue
		}

		if err := godotenv.Overload(absPath); err != nil {
			return nil, errors.Wrapf(err, "failed to load env file: %s", absPath)
		}

		loaded = append(loaded, absPath)
	}

	return loaded, nil
}

func printLoadedEnvFiles() {
	for _, envfile := range loadedEnvFiles {
		log.Infof("loaded env file: %s", envfile)
	}
}
