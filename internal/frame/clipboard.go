package frame

import (
	"strings"

	"github.com/atotto/clipboard"
)

// ReadClipboard parses the platform clipboard contents as delimited text.
// Clipboard tables are commonly tab-separated (that is what spreadsheet
// copies produce), so a tab separator is assumed unless one is given.
func ReadClipboard(opts ReadOptions) (*Table, error) {
	data, err := clipboard.ReadAll()
	if err != nil {
		return nil, Errorf("Clipboard unavailable: %v", err)
	}
	if opts.Separator == "" || opts.Separator == "," {
		if strings.Contains(data, "\t") {
			opts.Separator = "\t"
		}
	}
	return Read(strings.NewReader(data), opts)
}

// WriteClipboard serializes a Table onto the platform clipboard.
func WriteClipboard(t *Table, opts WriteOptions) error {
	var sb strings.Builder
	if err := Write(t, &sb, opts); err != nil {
		return err
	}
	if err := clipboard.WriteAll(sb.String()); err != nil {
		return Errorf("Clipboard unavailable: %v", err)
	}
	return nil
}
