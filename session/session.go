package session

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/browser"
	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/prompt"
	"bikeshare/reporters"
)

const (
	restartQuestion = "\nWould you like to restart? Type Yes or No:"
	stopAnswer      = "no"

	// ClosingMessage is printed when the user decides to stop exploring
	ClosingMessage = "Thank you for using the Bike Share Exploration Program!"
)

// Session runs the exploration: city and time filter selection, statistics and raw data, until the user stops
type Session struct {
	config    *config.ExplorerConfig
	collector *prompt.Collector
	loader    *dataset.Loader
	browser   *browser.Browser
	output    io.Writer
}

func NewSession(explorerConfig *config.ExplorerConfig, input io.Reader, output io.Writer) *Session {
	collector := prompt.NewCollector(input, output, explorerConfig.MaxAttempts)
	return &Session{
		config:    explorerConfig,
		collector: collector,
		loader:    dataset.NewLoader(explorerConfig),
		browser:   browser.NewBrowser(collector, output, explorerConfig.PageSize),
		output:    output,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: session][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: session][method: %s][status: OK] %s", method, message)
}

// Run repeats the exploration until the user answers "no" to the restart question.
// Running out of input ends the session as if the user had answered "no".
func (s *Session) Run() error {
	for iteration := 1; ; iteration++ {
		err := s.runOnce()
		if errors.Is(err, prompt.ErrInputClosed) {
			log.Info(s.getLogMessage("Run", "input closed, finishing session", nil))
			break
		}
		if err != nil {
			log.Error(s.getLogMessage("Run", fmt.Sprintf("exploration %v failed", iteration), err))
			return err
		}

		answer, err := s.collector.AskYesNo(restartQuestion)
		if errors.Is(err, prompt.ErrInputClosed) || answer == stopAnswer {
			break
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(s.output, ClosingMessage)
	return nil
}

func (s *Session) runOnce() error {
	selectedCity, err := s.collector.AskCity()
	if err != nil {
		return err
	}

	tf, err := s.collector.AskTime()
	if err != nil {
		return err
	}
	log.Debug(s.getLogMessage("runOnce", fmt.Sprintf("city: %s, %s", selectedCity, tf), nil))

	df, err := s.loader.LoadData(selectedCity, tf)
	if err != nil {
		return err
	}

	cityReporters, err := reporters.NewReporters(s.config, selectedCity)
	if err != nil {
		return err
	}

	for _, reporter := range cityReporters {
		err = reporters.Run(s.output, reporter, df)
		if err != nil {
			return err
		}
	}

	return s.browser.DisplayData(df)
}
