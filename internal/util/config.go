package util

import "github.com/mxcd/go-config/config"

func InitConfig() error {
	err := config.LoadConfig([]config.Value{
		// version info
		config.String("DEPLOYMENT_IMAGE_TAG").NotEmpty().Default("development"),

		// logging config
		config.String("LOG_LEVEL").NotEmpty().Default("info"),

		// server config
		config.Bool("DEV").Default(false),
		config.Int("PORT").Default(8080),

		// packaged project archive, produced by the build outside this server
		config.String("TARGET_FILE_PATH").NotEmpty().Default("/app/fitness-tracker-project.tar.gz"),
		// name the browser saves the archive under
		config.String("DOWNLOAD_FILENAME").NotEmpty().Default("fitness-tracker-complete.tar.gz"),
	})
	return err
}
