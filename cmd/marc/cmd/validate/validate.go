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

package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/nlnwa/gomarc"
	"github.com/nlnwa/gomarc/cmd/marc/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type conf struct {
	fileName string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate the records of a MARC file",
		Long: `Validate reads every record of the file and reports records that can not be decoded,
records with a wrong declared length and directories missing their terminator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			return runE(cmd.OutOrStdout(), c)
		},
	}

	return cmd
}

var errInvalid = errors.New("validation failed")

func runE(out io.Writer, c *conf) error {
	mf, err := gomarc.NewMarcFileReader(c.fileName, 0,
		gomarc.WithBlockSize(viper.GetInt(internal.FlagBlockSize)),
		gomarc.WithEncodingName(viper.GetString(internal.FlagEncoding)),
		gomarc.WithRecordErrorPolicy(gomarc.ErrWarn),
		gomarc.WithSpecViolationPolicy(gomarc.ErrWarn))
	if err != nil {
		return err
	}
	defer func() { _ = mf.Close() }()

	count, errCount := 0, 0
	for {
		rec, _, validation, err := mf.Next()
		for _, e := range *validation {
			errCount++
			_, _ = fmt.Fprintln(out, e)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if rec != nil {
			count++
		}
	}
	_, _ = fmt.Fprintf(out, "Records: %d, errors: %d\n", count, errCount)
	if errCount > 0 {
		return errInvalid
	}
	return nil
}
