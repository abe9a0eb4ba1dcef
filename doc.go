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

/*
Package gomarc allows parsing of MARC records stored in the ISO 2709 exchange format.

# ISO 2709

ISO 2709 is the binary exchange format used by MARC 21, UNIMARC and CNMARC catalog records.
Every record starts with a 24 byte leader declaring the record length and the offset of the data section.
The leader is followed by a directory of 12 byte entries, one per field, and the data section holding the
fields themselves. Fields are terminated by the field separator (0x1E), subfields are introduced by the
subfield separator (0x1F) and every record ends with the record separator (0x1D).

The leader and the directory are always plain ASCII. The content of the fields is decoded with a configurable
text encoding which defaults to GB18030, the encoding used by CNMARC.

# Parse MARC records

The [Unmarshaler] is used to parse a single raw record. It is initialized with [NewUnmarshaler].

The [MarcReader] is used to read a stream of concatenated records. It is initialized with [NewMarcReader].
[ReadRecords] reads a whole stream at once.

The [MarcFileReader] is used to read MARC files. It is initialized with [NewMarcFileReader].

# Validation and errors

Errors are reported as [*RecordError] values naming the ordinal of the failing record in the stream and the
decode stage that failed. The underlying cause can be matched with errors.Is against [ErrMalformedLeader],
[ErrMalformedDirectory], [ErrFieldBounds], [ErrDecode] and [ErrTruncatedStream].

How malformed records are handled is controlled with [WithRecordErrorPolicy]. By default the first malformed
record aborts the read. With [ErrWarn] the record is skipped and the error is added to the [Validation].
*/
package gomarc
