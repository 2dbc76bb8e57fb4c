package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

// InitEnvironmentVariables loads the .env file for the given environment
// from the working directory. The file is optional: the process
// environment is used as-is when it does not exist.
func InitEnvironmentVariables(goEnv string) error {
	envFile := DEV_ENV_FILENAME
	if goEnv == "production" {
		envFile = PROD_ENV_FILENAME
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Debugf("no %s file found, using process environment", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s file: %v", envFile, err)
	}

	return nil
}
