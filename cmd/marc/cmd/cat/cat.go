/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/nlnwa/gomarc"
	"github.com/nlnwa/gomarc/cmd/marc/internal"
	"github.com/spf13/cobra"
)

type conf struct {
	offset      int64
	recordCount int
	strict      bool
	json        bool
	fileName    string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "cat FILE",
		Short: "Print records from MARC files",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			if c.offset >= 0 && c.recordCount == 0 {
				c.recordCount = 1
			}
			if c.offset < 0 {
				c.offset = 0
			}
			return runE(cmd.OutOrStdout(), cmd.ErrOrStderr(), c)
		},
	}

	cmd.Flags().Int64VarP(&c.offset, "offset", "o", -1, "record offset")
	cmd.Flags().IntVarP(&c.recordCount, "record-count", "c", 0, "The maximum number of records to show")
	cmd.Flags().BoolVarP(&c.strict, "strict", "s", false, "strict parsing")
	cmd.Flags().BoolVar(&c.json, "json", false, "print records as JSON, one record per line")

	return cmd
}

func runE(out, errOut io.Writer, c *conf) error {
	opts, err := internal.RecordOptions(c.strict)
	if err != nil {
		return err
	}
	mf, err := gomarc.NewMarcFileReader(c.fileName, c.offset, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = mf.Close() }()

	var p printer
	if c.json {
		p = &jsonPrinter{enc: json.NewEncoder(out)}
	} else {
		p = &textPrinter{out: out}
	}

	count := 0
	for {
		rec, currentOffset, _, err := mf.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			break
		}
		count++

		if err := p.print(currentOffset, rec); err != nil {
			return err
		}

		if c.recordCount > 0 && count >= c.recordCount {
			break
		}
	}
	_, _ = fmt.Fprintln(errOut, "Count: ", count)
	return nil
}

type printer interface {
	print(offset int64, record *gomarc.Record) error
}

type jsonPrinter struct {
	enc *json.Encoder
}

func (p *jsonPrinter) print(offset int64, record *gomarc.Record) error {
	return p.enc.Encode(struct {
		Offset int64 `json:"offset"`
		*gomarc.Record
	}{offset, record})
}

var (
	tagColor  = color.New(color.FgCyan, color.Bold)
	codeColor = color.New(color.FgYellow)
)

type textPrinter struct {
	out io.Writer
}

func (p *textPrinter) print(offset int64, record *gomarc.Record) error {
	l := record.Leader
	if _, err := fmt.Fprintf(p.out, "%s %d length=%d data=%d status=%s type=%s level=%s\n",
		tagColor.Sprint("LDR"), offset, l.RecordLength, l.DataIndex, l.Status, l.Type, l.Level); err != nil {
		return err
	}
	for _, f := range record.Fields {
		if _, err := fmt.Fprint(p.out, tagColor.Sprint(f.Tag)); err != nil {
			return err
		}
		if f.Value != "" {
			_, _ = fmt.Fprintf(p.out, " %s", f.Value)
		}
		for _, sf := range f.SubFields {
			_, _ = fmt.Fprintf(p.out, " %s %s", codeColor.Sprint("$"+sf.Tag), sf.Value)
		}
		if _, err := fmt.Fprintln(p.out); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.out)
	return err
}
