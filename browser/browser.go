package browser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
)

const (
	firstQuestion = "\nWould you like to see individual trip data? Type Yes or No:"
	moreQuestion  = "\nWould you like to see more data? Type Yes or No:"
	stopAnswer    = "no"
)

var separator = strings.Repeat("-", 40)

// Asker asks a yes/no question and returns the lower-cased answer
type Asker interface {
	AskYesNo(question string) (string, error)
}

// Browser prints the raw trips of a dataset, pageSize rows at a time
type Browser struct {
	asker    Asker
	output   io.Writer
	pageSize int
}

func NewBrowser(asker Asker, output io.Writer, pageSize int) *Browser {
	return &Browser{
		asker:    asker,
		output:   output,
		pageSize: pageSize,
	}
}

// DisplayData prints the next page of trips while the user does not answer "no".
// Any other answer shows the next page. Pages past the end of the dataset are printed empty.
func (b *Browser) DisplayData(df dataframe.DataFrame) error {
	answer, err := b.asker.AskYesNo(firstQuestion)
	if err != nil {
		return err
	}

	cursor := 0
	for answer != stopAnswer {
		err = b.printPage(df, cursor)
		if err != nil {
			return err
		}
		cursor += b.pageSize

		answer, err = b.asker.AskYesNo(moreQuestion)
		if err != nil {
			return err
		}
	}

	log.Debugf("[component: browser][method: DisplayData] stopped after %v rows", min(cursor, df.Nrow()))
	return nil
}

// printPage prints the rows in [cursor, cursor+pageSize) that exist
func (b *Browser) printPage(df dataframe.DataFrame, cursor int) error {
	end := min(cursor+b.pageSize, df.Nrow())
	if cursor < end {
		indexes := make([]int, 0, end-cursor)
		for i := cursor; i < end; i++ {
			indexes = append(indexes, i)
		}

		page := df.Subset(indexes)
		if page.Err != nil {
			return fmt.Errorf("error getting rows %v to %v: %w", cursor, end, page.Err)
		}

		writer := tabwriter.NewWriter(b.output, 0, 0, 2, ' ', 0)
		for _, record := range pageRecords(page) {
			fmt.Fprintln(writer, strings.Join(record, "\t"))
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(b.output, separator)
	return nil
}

// pageRecords returns the header and the rows of page as they look in the source file:
// floats without trailing zeros and missing values as empty cells
func pageRecords(page dataframe.DataFrame) [][]string {
	records := [][]string{page.Names()}
	for i := 0; i < page.Nrow(); i++ {
		record := make([]string, 0, page.Ncol())
		for _, name := range page.Names() {
			record = append(record, formatElement(page.Col(name).Elem(i)))
		}
		records = append(records, record)
	}
	return records
}

func formatElement(elem series.Element) string {
	if elem.IsNA() {
		return ""
	}
	if elem.Type() == series.Float {
		return strconv.FormatFloat(elem.Float(), 'f', -1, 64)
	}
	return elem.String()
}
