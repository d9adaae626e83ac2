package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/config"
	"bikeshare/session"
	"bikeshare/utils"
)

var Cmd = &cobra.Command{
	Use:           "explorer",
	Short:         "Explore US bike share data",
	Long:          "Interactively select a city and a month or day of the week and print statistics about its bike share trips",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var args struct {
	configFilepath string
	dataDir        string
	logLevel       string
}

func init() {
	Cmd.Flags().StringVar(&args.configFilepath, "config", "", "path to the YAML config file, the built-in config is used if empty")
	Cmd.Flags().StringVar(&args.dataDir, "data-dir", "", "directory with the city files, overrides data_dir of the config")
	Cmd.Flags().StringVar(&args.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
}

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, argv []string) error {
	if err := InitLogger(args.logLevel); err != nil {
		return err
	}

	explorerConfig, err := config.LoadConfig(args.configFilepath)
	if err != nil {
		log.Errorf("[component: explorer][status: ERROR] error loading config: %s", err.Error())
		return err
	}
	if args.dataDir != "" {
		explorerConfig.DataDir = args.dataDir
	}
	log.Debugf("[component: explorer][status: OK] data directory: %s", explorerConfig.DataDir)

	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Debugf("[component: explorer] received signal %s", sig)
		fmt.Fprintln(cmd.OutOrStdout(), "\n"+session.ClosingMessage)
		os.Exit(0)
	}()

	return session.NewSession(explorerConfig, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
