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

package ls

import (
	"errors"
	"fmt"
	"io"

	"github.com/nlnwa/gomarc"
	"github.com/nlnwa/gomarc/cmd/marc/internal"
	"github.com/spf13/cobra"
)

type conf struct {
	offset      int64
	recordCount int
	strict      bool
	fileName    string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "ls FILE",
		Short: "List records from MARC files",
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

		printRecord(out, currentOffset, count, rec)

		if c.recordCount > 0 && count >= c.recordCount {
			break
		}
	}
	_, _ = fmt.Fprintln(errOut, "Count: ", count)
	return nil
}

func printRecord(out io.Writer, offset int64, ordinal int, record *gomarc.Record) {
	title := internal.CropString(internal.FirstSubfield(record, "200", "a"), 100)
	_, _ = fmt.Fprintf(out, "%9d %6d %5d %3d %s\n", offset, ordinal, record.Leader.RecordLength, len(record.Fields), title)
}
