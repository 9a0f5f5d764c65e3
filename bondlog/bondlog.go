/*
 * bondlog.go, part of find-pair.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package bondlog

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	hbond "github.com/jyesselm/find-pair-sub004"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the stream the records are written to.
type Compression int

const (
	Plain Compression = iota
	Zstd
	Gzip
)

// CompressionFor returns the compression implied by the extension of name:
// .zst for zstd, .gz for gzip, plain text otherwise.
func CompressionFor(name string) Compression {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	}
	return Plain
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

const nfields = 13

// Record is one bond as stored in a log. Residues and atoms are kept by
// name only.
type Record struct {
	Index           int
	DonorResidue    string
	DonorAtom       string
	AcceptorResidue string
	AcceptorAtom    string
	Classification  string
	Distance        float64
	Alignment       float64
	HSlot           int
	LPSlot          int
	Context         string
	Conflict        string
	Linkage         int
}

// RecordOf returns the record for the bond b.
func RecordOf(b *hbond.HydrogenBond) Record {
	return Record{
		Index:           b.Index,
		DonorResidue:    b.Donor.ID,
		DonorAtom:       hbond.NormalizeAtomName(b.DonorAtom.Name),
		AcceptorResidue: b.Acceptor.ID,
		AcceptorAtom:    hbond.NormalizeAtomName(b.AcceptorAtom.Name),
		Classification:  b.Classification.String(),
		Distance:        b.Distance,
		Alignment:       b.Alignment,
		HSlot:           b.HSlot,
		LPSlot:          b.LPSlot,
		Context:         b.Context.String(),
		Conflict:        b.Conflict.String(),
		Linkage:         b.LinkageType(),
	}
}

func (R Record) line() string {
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%.3f\t%.3f\t%d\t%d\t%s\t%s\t%d\n", R.Index, R.DonorResidue, R.DonorAtom,
		R.AcceptorResidue, R.AcceptorAtom, R.Classification, R.Distance, R.Alignment, R.HSlot, R.LPSlot, R.Context, R.Conflict, R.Linkage)
}

func parseRecord(line string) (Record, error) {
	var R Record
	f := strings.Split(line, "\t")
	if len(f) != nfields {
		return R, fmt.Errorf("%d fields, %d expected", len(f), nfields)
	}
	ints := make([]int, 0, 4)
	for _, i := range []int{0, 8, 9, 12} {
		v, err := strconv.Atoi(f[i])
		if err != nil {
			return R, err
		}
		ints = append(ints, v)
	}
	d, err := strconv.ParseFloat(f[6], 64)
	if err != nil {
		return R, err
	}
	a, err := strconv.ParseFloat(f[7], 64)
	if err != nil {
		return R, err
	}
	R = Record{Index: ints[0], DonorResidue: f[1], DonorAtom: f[2], AcceptorResidue: f[3], AcceptorAtom: f[4],
		Classification: f[5], Distance: d, Alignment: a, HSlot: ints[1], LPSlot: ints[2], Context: f[10],
		Conflict: f[11], Linkage: ints[3]}
	return R, nil
}

// Writer writes bond records, one per line, after a header of
// "#key=value" lines.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	b         *bufio.Writer
	name      string
	writeable bool
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewWriter returns a Writer on w. The header, if given, is written
// first, sorted by key. Closing the Writer does not close w.
func NewWriter(w io.Writer, header map[string]string, compression Compression) (*Writer, error) {
	W := &Writer{name: "stream"}
	keys := make([]string, 0, len(header))
	for k, v := range header {
		if k == "" || strings.ContainsAny(k, "=\n") || strings.Contains(v, "\n") {
			return nil, &Error{fmt.Sprintf("Malformed header entry %q", k), W.name, []string{"NewWriter"}, true}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var err error
	switch compression {
	case Zstd:
		W.h, err = zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Gzip:
		W.h = gzip.NewWriter(w)
	default:
		W.h = nopCloser{w}
	}
	if err != nil {
		return nil, &Error{"Can't start compressor: " + err.Error(), W.name, []string{"NewWriter"}, true}
	}
	W.b = bufio.NewWriter(W.h)
	W.writeable = true
	for _, k := range keys {
		fmt.Fprintf(W.b, "#%s=%s\n", k, header[k])
	}
	return W, nil
}

// Create creates the file name and returns a Writer on it. The compression
// is chosen from the file extension.
func Create(name string, header map[string]string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"Create"}, true}
	}
	W, err := NewWriter(f, header, CompressionFor(name))
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Create")
	}
	W.f = f
	W.name = name
	return W, nil
}

// Write writes one record per bond.
func (W *Writer) Write(bonds ...*hbond.HydrogenBond) error {
	for _, b := range bonds {
		if err := W.WriteRecord(RecordOf(b)); err != nil {
			return errDecorate(err, "Write")
		}
	}
	return nil
}

// WriteRecord writes r.
func (W *Writer) WriteRecord(r Record) error {
	if !W.writeable {
		return &Error{NotWriteable, W.name, []string{"WriteRecord"}, true}
	}
	if _, err := W.b.WriteString(r.line()); err != nil {
		return &Error{err.Error(), W.name, []string{"WriteRecord"}, true}
	}
	return nil
}

// Close flushes the records and closes the compressor, and the file if the
// Writer was created with Create. It is safe to call Close more than once.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.b.Flush()
	if cerr := W.h.Close(); err == nil {
		err = cerr
	}
	if W.f != nil {
		if cerr := W.f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return &Error{err.Error(), W.name, []string{"Close"}, true}
	}
	return nil
}

// zstdCloser gives the zstd decoder the io.ReadCloser signature.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Reader reads the records written by a Writer. The compression is
// detected from the first bytes of the stream.
type Reader struct {
	f      *os.File
	d      io.ReadCloser
	h      *bufio.Reader
	name   string
	header map[string]string
	line   int
	peeked *string
}

// NewReader returns a Reader on r and the header of the log (nil if the
// log has no header).
func NewReader(r io.Reader) (*Reader, map[string]string, error) {
	R := &Reader{name: "stream"}
	in := bufio.NewReader(r)
	magic, _ := in.Peek(4)
	var err error
	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		var z *zstd.Decoder
		z, err = zstd.NewReader(in)
		if err == nil {
			R.d = zstdCloser{z}
		}
	case bytes.HasPrefix(magic, gzipMagic):
		R.d, err = gzip.NewReader(in)
	default:
		R.d = io.NopCloser(in)
	}
	if err != nil {
		return nil, nil, &Error{"Can't start decompressor: " + err.Error(), R.name, []string{"NewReader"}, true}
	}
	R.h = bufio.NewReader(R.d)
	if err := R.readHeader(); err != nil {
		return nil, nil, errDecorate(err, "NewReader")
	}
	return R, R.header, nil
}

// Open opens the log in the file name.
func Open(name string) (*Reader, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, &Error{err.Error(), name, []string{"Open"}, true}
	}
	R, h, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, errDecorate(err, "Open")
	}
	R.f = f
	R.name = name
	return R, h, nil
}

func (R *Reader) readLine() (string, error) {
	str, err := R.h.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && str != "") {
		return "", err
	}
	R.line++
	return strings.TrimSuffix(str, "\n"), nil
}

func (R *Reader) readHeader() error {
	for {
		str, err := R.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &Error{"Can't read header: " + err.Error(), R.name, []string{"readHeader"}, true}
		}
		if !strings.HasPrefix(str, "#") {
			R.peeked = &str
			return nil
		}
		kv := strings.SplitN(str[1:], "=", 2)
		if len(kv) != 2 {
			return &Error{fmt.Sprintf("Malformed header line %d: %q", R.line, str), R.name, []string{"readHeader"}, true}
		}
		if R.header == nil {
			R.header = make(map[string]string)
		}
		R.header[kv[0]] = kv[1]
	}
}

// Next returns the next record. At the end of the log it returns io.EOF.
func (R *Reader) Next() (Record, error) {
	var str string
	if R.peeked != nil {
		str, R.peeked = *R.peeked, nil
	} else {
		var err error
		str, err = R.readLine()
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		if err != nil {
			return Record{}, &Error{err.Error(), R.name, []string{"Next"}, true}
		}
	}
	rec, err := parseRecord(str)
	if err != nil {
		return rec, &Error{fmt.Sprintf("Malformed record in line %d: %s", R.line, err.Error()), R.name, []string{"Next"}, true}
	}
	return rec, nil
}

// ReadAll returns all the remaining records.
func (R *Reader) ReadAll() ([]Record, error) {
	var ret []Record
	for {
		rec, err := R.Next()
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		if err != nil {
			return ret, errDecorate(err, "ReadAll")
		}
		ret = append(ret, rec)
	}
}

// Close closes the decompressor, and the file if the Reader was opened with Open.
func (R *Reader) Close() error {
	R.d.Close()
	if R.f != nil {
		return R.f.Close()
	}
	return nil
}
