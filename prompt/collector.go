package prompt

import (
	"bufio"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/timefilter"
	"bikeshare/utils"
)

const (
	cityQuestion  = "Please enter your city choice Chicago, New York, Washington:"
	timeQuestion  = "Would you like to filter the data by Month, Day, None:"
	monthQuestion = "Which month? January, February, March, April, May, or June?:"
	dayQuestion   = "Which Day? Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, or Sunday?:"

	invalidInputMessage     = "Sorry this is an invalid input"
	invalidTimeFrameMessage = "Sorry, invalid input"
)

// Time frame options
const (
	monthTimeFrame = "month"
	dayTimeFrame   = "day"
	noneTimeFrame  = "none"
)

// Collector asks questions to the user and reads the answers line by line.
// Answers are compared in lower case. A maxAttempts of 0 asks again forever on invalid answers.
type Collector struct {
	scanner     *bufio.Scanner
	output      io.Writer
	maxAttempts int
}

func NewCollector(input io.Reader, output io.Writer, maxAttempts int) *Collector {
	return &Collector{
		scanner:     bufio.NewScanner(input),
		output:      output,
		maxAttempts: maxAttempts,
	}
}

// AskCity asks for a city until a valid one is entered
func (c *Collector) AskCity() (city.City, error) {
	for attempt := 1; ; attempt++ {
		answer, err := c.ask(cityQuestion)
		if err != nil {
			return "", err
		}

		selectedCity, err := city.ParseCity(answer)
		if err == nil {
			return selectedCity, nil
		}

		log.Debugf("[component: collector][method: AskCity] %s", err.Error())
		if err = c.rejectAnswer(invalidInputMessage, attempt); err != nil {
			return "", err
		}
	}
}

// AskTime asks whether to filter by month, by day or not at all and then for the month or the day to use
func (c *Collector) AskTime() (timefilter.TimeFilter, error) {
	for attempt := 1; ; attempt++ {
		timeFrame, err := c.ask(timeQuestion)
		if err != nil {
			return timefilter.TimeFilter{}, err
		}

		switch timeFrame {
		case monthTimeFrame:
			return c.askUntilValid(monthQuestion, timefilter.NewMonthFilter)
		case dayTimeFrame:
			return c.askUntilValid(dayQuestion, timefilter.NewDayFilter)
		case noneTimeFrame:
			return timefilter.NoFilter(), nil
		}

		if err = c.rejectAnswer(invalidTimeFrameMessage, attempt); err != nil {
			return timefilter.TimeFilter{}, err
		}
	}
}

// AskYesNo asks question and returns the answer in lower case. The answer is not validated
func (c *Collector) AskYesNo(question string) (string, error) {
	return c.ask(question)
}

func (c *Collector) askUntilValid(question string, parse func(string) (timefilter.TimeFilter, error)) (timefilter.TimeFilter, error) {
	for attempt := 1; ; attempt++ {
		answer, err := c.ask(question)
		if err != nil {
			return timefilter.TimeFilter{}, err
		}

		tf, err := parse(answer)
		if err == nil {
			return tf, nil
		}

		log.Debugf("[component: collector][method: askUntilValid] %s", err.Error())
		if err = c.rejectAnswer(invalidInputMessage, attempt); err != nil {
			return timefilter.TimeFilter{}, err
		}
	}
}

func (c *Collector) ask(question string) (string, error) {
	fmt.Fprintln(c.output, question)

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading answer: %w", err)
		}
		return "", ErrInputClosed
	}

	return utils.NormalizeInput(c.scanner.Text()), nil
}

// rejectAnswer tells the user that the answer was invalid. Fails once maxAttempts answers were rejected
func (c *Collector) rejectAnswer(message string, attempt int) error {
	fmt.Fprintf(c.output, "%s\n\n", message)
	if c.maxAttempts > 0 && attempt >= c.maxAttempts {
		return fmt.Errorf("%w: %v", ErrTooManyAttempts, attempt)
	}
	return nil
}
